package site

import (
	"bytes"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"text/template"
)

// HeightMessageType tags the messages posted to the embedding page.
const HeightMessageType = "IFRAME_HEIGHT"

// settleDelayMs is the extra post after first render.
const settleDelayMs = 100

// HeightMessage is what the embedded page posts to window.parent whenever
// its content height may have changed.
type HeightMessage struct {
	Type   string `json:"type"`
	Height int    `json:"height"`
	Path   string `json:"path"`
}

var heightTemplate = template.Must(template.New("iframe-height").Parse(`(function () {
  if (window.self === window.top) return;
  document.documentElement.classList.add('iframe-embedded');
  function send() {
    var height = Math.max(document.documentElement.scrollHeight, document.body.scrollHeight);
    window.parent.postMessage({ {{.TypeKey}}: '{{.Type}}', {{.HeightKey}}: height, {{.PathKey}}: window.location.pathname }, '*');
  }
  function start() {
    send();
    window.addEventListener('resize', send);
    window.addEventListener('load', send);
    if (typeof ResizeObserver !== 'undefined') {
      new ResizeObserver(send).observe(document.body);
    }
    setTimeout(send, {{.DelayMs}});
  }
  if (document.body) { start(); } else { document.addEventListener('DOMContentLoaded', start); }
})();
`))

var heightScript = mustRenderHeightScript()

func mustRenderHeightScript() []byte {
	b, err := renderHeightScript()
	if err != nil {
		panic(err)
	}
	return b
}

// renderHeightScript fills the reporter with the HeightMessage field names.
func renderHeightScript() ([]byte, error) {
	var buf bytes.Buffer
	err := heightTemplate.Execute(&buf, struct {
		TypeKey, HeightKey, PathKey, Type string
		DelayMs                           int
	}{
		TypeKey:   jsonKey("Type"),
		HeightKey: jsonKey("Height"),
		PathKey:   jsonKey("Path"),
		Type:      HeightMessageType,
		DelayMs:   settleDelayMs,
	})
	if err != nil {
		return nil, errors.Join(ErrRender, err)
	}
	return buf.Bytes(), nil
}

// jsonKey returns the JSON name of a HeightMessage field.
func jsonKey(field string) string {
	f, _ := reflect.TypeOf(HeightMessage{}).FieldByName(field)
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	return name
}

// HandleHeightScript handles GET /iframe-height.js.
func HandleHeightScript(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	_, _ = w.Write(heightScript)
}
