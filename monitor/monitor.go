package monitor

import (
	"os"

	"github.com/gin-gonic/gin"
)

func RegisterMonitorPage(router *gin.Engine) {
	router.GET("/monitor", func(c *gin.Context) {
		c.Data(200, "text/html; charset=utf-8", []byte(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1.0" />
  <title>Hall Booking Monitor</title>
  <style>
    * { margin: 0; padding: 0; box-sizing: border-box; }
    body {
      background: #0f0f0f;
      color: #e0e0e0;
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
      min-height: 100vh;
      padding: 20px;
    }
    .container { max-width: 1000px; margin: 0 auto; }
    h1 { font-size: 1.8rem; margin-bottom: 1.5rem; color: #8ab4f8; }
    .status-card {
      background: rgba(255, 255, 255, 0.05);
      border: 1px solid rgba(255, 255, 255, 0.1);
      border-radius: 12px;
      padding: 1.2rem;
      margin-bottom: 1.5rem;
    }
    #status { font-size: 1.1rem; font-weight: 600; }
    #logs {
      background: rgba(255, 255, 255, 0.03);
      border: 1px solid rgba(255, 255, 255, 0.1);
      border-radius: 12px;
      padding: 1.2rem;
      font-family: 'SF Mono', Menlo, Consolas, monospace;
      font-size: 0.82rem;
      white-space: pre-wrap;
      max-height: 70vh;
      overflow-y: auto;
    }
  </style>
</head>
<body>
  <div class="container">
    <h1>Hall Booking Monitor</h1>
    <div class="status-card"><div id="status">checking&hellip;</div></div>
    <div id="logs">loading logs&hellip;</div>
  </div>
  <script>
    const token = new URLSearchParams(location.search).get('token') || '';
    async function refresh() {
      try {
        const res = await fetch('/logs?token=' + encodeURIComponent(token));
        if (!res.ok) {
          document.getElementById('status').textContent = 'log access denied (' + res.status + ')';
          return;
        }
        const text = await res.text();
        document.getElementById('status').textContent = 'server up';
        const el = document.getElementById('logs');
        el.textContent = text.split('\n').slice(-400).join('\n');
        el.scrollTop = el.scrollHeight;
      } catch (e) {
        document.getElementById('status').textContent = 'server unreachable';
      }
    }
    refresh();
    setInterval(refresh, 5000);
  </script>
</body>
</html>`))
	})
}

// LogAccessToken gates the /logs endpoint. Empty disables log access.
func LogAccessToken() string {
	return os.Getenv("LOG_ACCESS_TOKEN")
}
