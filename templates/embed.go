package templates

// Embed page template - the widget page served at /embed.
//
// The outer <section> carries the same data-mastodon-* attributes the widget
// reads its configuration from, so the served markup doubles as a reference
// for embedding pages. The inner container starts out with the loading
// placeholder and is filled server-side with the rendered comment list (or
// the error message) before the page is written.

// GetEmbedTemplate returns the embed page template.
func GetEmbedTemplate() string {
	return embedTemplate
}

var embedTemplate = `<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <style>
    * { box-sizing: border-box; margin: 0; padding: 0; }
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Oxygen, Ubuntu, Cantarell, sans-serif;
      line-height: 1.6;
      color: #333;
      background: transparent;
      padding: 12px;
    }
    .mastodon-comments { max-width: 680px; margin: 0 auto; }
    .comments-header {
      display: flex;
      align-items: center;
      gap: 12px;
      flex-wrap: wrap;
      padding-bottom: 12px;
      border-bottom: 1px solid #e1e4e8;
    }
    .comments-header h2 { font-size: 20px; }
    .comments-header .instance-title { color: #666; font-size: 13px; }
    .comments-header .reply-link {
      margin-left: auto;
      padding: 6px 12px;
      background: #6364ff;
      color: white;
      text-decoration: none;
      border-radius: 4px;
      font-size: 13px;
    }
    .comments-header .reply-link:hover { background: #563acc; }
    .comments-header .qr-link img { width: 28px; height: 28px; display: block; }
    .comments-list { padding-top: 12px; }
    .comments-loading, .comments-empty, .comments-error {
      color: #666;
      font-size: 14px;
      padding: 16px 0;
    }
    .comments-error { color: #b3261e; }
    .comment {
      padding: 12px 0;
      border-bottom: 1px solid #f0f0f0;
    }
    .comment-avatar {
      width: 40px;
      height: 40px;
      border-radius: 6px;
      float: left;
      margin-right: 10px;
    }
    .comment-author { text-decoration: none; color: inherit; }
    .comment-author .author-name { font-weight: 600; }
    .comment-author .author-handle { color: #666; font-size: 13px; margin-left: 4px; }
    .comment-date {
      color: #666;
      font-size: 12px;
      text-decoration: none;
      float: right;
    }
    .comment-date:hover { text-decoration: underline; }
    .comment-body { clear: both; padding-top: 6px; font-size: 14px; }
    .comment-body a { color: #6364ff; }
    .comment-body .custom-emoji { width: 1.2em; height: 1.2em; vertical-align: text-bottom; }
    .comment-attachments { padding-top: 8px; display: flex; gap: 8px; flex-wrap: wrap; }
    .comment-attachments img { max-width: 100%; border-radius: 6px; }
    .comment-attachments video, .comment-attachments audio { max-width: 100%; }
  </style>
</head>
<body>
  <section class="mastodon-comments" data-mastodon-host="{{.Host}}" data-mastodon-post-id="{{.PostID}}" data-page-language="{{.Lang}}"{{if .PostURL}} data-mastodon-post-url="{{.PostURL}}"{{end}}>
    <header class="comments-header">
      <h2>{{.Title}}</h2>
      {{if .InstanceTitle}}<span class="instance-title">via {{.InstanceTitle}}</span>{{end}}
      {{if .PostURL}}
      <a href="{{.PostURL}}" class="reply-link" rel="noopener" target="_blank">Comment on the original post</a>
      <a href="{{.PostURL}}" class="qr-link" title="Open the thread on your phone"><img src="/qr?url={{.PostURL}}" alt="QR code linking to the original post"></a>
      {{end}}
    </header>
    <div class="comments-list" id="comments-list">
      {{if .CommentsHTML}}{{.CommentsHTML}}{{else}}<p class="comments-loading">Loading comments…</p>{{end}}
    </div>
  </section>
</body>
</html>
`

// GetDocsTemplate returns the docs page template used at the root path.
func GetDocsTemplate() string {
	return docsTemplate
}

var docsTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <style>
    * { box-sizing: border-box; margin: 0; padding: 0; }
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Oxygen, Ubuntu, Cantarell, sans-serif;
      line-height: 1.6;
      color: #333;
      background: #f5f5f5;
      padding: 20px;
    }
    .container {
      max-width: 800px;
      margin: 0 auto;
      background: white;
      border-radius: 8px;
      box-shadow: 0 2px 8px rgba(0,0,0,0.1);
      padding: 30px;
    }
    .container h1, .container h2, .container h3 { margin: 16px 0 8px; }
    .container p, .container ul, .container pre { margin-bottom: 12px; }
    .container pre {
      background: #f8f9fa;
      padding: 12px;
      border-radius: 4px;
      overflow-x: auto;
      font-size: 13px;
    }
    .container code { font-size: 13px; }
    .container ul { padding-left: 24px; }
  </style>
</head>
<body>
  <div class="container">
    {{.BodyHTML}}
  </div>
</body>
</html>
`
