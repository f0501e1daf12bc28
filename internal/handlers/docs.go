// internal/handlers/docs.go
package handlers

import (
	"fmt"
	"html"
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
)

// DocsHandler renders an HTML page listing every route of the bot.
func (s *BotServer) DocsHandler(routes chi.Routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var lines []string
		err := chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
			lines = append(lines, fmt.Sprintf("%-6s %s", method, route))
			return nil
		})
		if err != nil {
			s.Logger.WithError(err).Warn("failed to list routes")
		}
		sort.Strings(lines)

		var b strings.Builder
		b.WriteString("<html><head><title>Dopynion bot</title></head><body>")
		fmt.Fprintf(&b, "<h1>%s</h1>", html.EscapeString(s.Evaluator.BotName))
		b.WriteString("<h2>API documentation</h2>")
		b.WriteString("<p>Every game route expects the game identifier in the <code>X-Game-Id</code> header.</p>")
		b.WriteString("<pre>")
		b.WriteString(html.EscapeString(strings.Join(lines, "\n")))
		b.WriteString("</pre></body></html>")

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write([]byte(b.String())); err != nil {
			s.Logger.WithError(err).Warn("failed to write docs page")
		}
	}
}
