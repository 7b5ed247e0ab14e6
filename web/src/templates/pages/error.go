package pages

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"
)

// ErrorPage is the body of the error page for an HTTP status.
func ErrorPage(status int, message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := http.StatusText(status)
		if title == "" {
			title = "Error"
		}
		if message == "" {
			message = defaultErrorMessage(status)
		}
		_, err := fmt.Fprintf(w,
			`<section class="error-page"><p class="error-code">%d</p><h1 class="page-title">%s</h1><p>%s</p><a class="cta-button" href="/">Back to home</a></section>`,
			status, templ.EscapeString(title), templ.EscapeString(message))
		return err
	})
}

func defaultErrorMessage(status int) string {
	switch status {
	case http.StatusNotFound:
		return "The page you are looking for does not exist yet."
	case http.StatusTooManyRequests:
		return "Too many requests. Please try again later."
	default:
		return "Something went wrong on our side. Please try again."
	}
}
