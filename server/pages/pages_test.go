package pages

import (
	"encoding/json"
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apierrors "github.com/teilomillet/travelplanner/errors"
	"go.uber.org/zap/zaptest"
)

func TestPagesRender(t *testing.T) {
	r, err := New(zaptest.NewLogger(t))
	require.NoError(t, err)

	tests := []struct {
		page     string
		contains []string
	}{
		{
			page: "index",
			contains: []string{
				`<form id="trip-form" method="post" action="/ask/">`,
				`name="start_location"`,
				`name="destination"`,
				`name="duration"`,
			},
		},
		{page: "destinations", contains: []string{"Kyoto, Japan", "Best time to visit"}},
		{page: "guides", contains: []string{"Packing light", "offline maps"}},
		{page: "testimonials", contains: []string{"Berlin to Prague"}},
		{page: "help", contains: []string{"Are my requests stored?"}},
	}

	for _, tt := range tests {
		t.Run(tt.page, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.Handler(tt.page)(rec, httptest.NewRequest(http.MethodGet, "/"+tt.page+"/", nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

			body := rec.Body.String()
			assert.Contains(t, body, "<!DOCTYPE html>")
			for _, s := range tt.contains {
				assert.Contains(t, body, s)
			}
			// Every page links to every other page.
			for _, p := range All {
				assert.Contains(t, body, `href="`+p.Path+`"`)
			}
		})
	}
}

func TestActiveNavLink(t *testing.T) {
	r, err := New(nil)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	r.Handler("guides")(rec, httptest.NewRequest(http.MethodGet, "/guides/", nil))

	assert.Contains(t, rec.Body.String(), `<a href="/guides/" class="active">Guides</a>`)
	assert.NotContains(t, rec.Body.String(), `<a href="/help/" class="active">`)
}

func TestUnknownPagePanics(t *testing.T) {
	r, err := New(nil)
	require.NoError(t, err)

	assert.Panics(t, func() {
		r.Handler("missing")
	})
}

func TestTemplatesEscapeContent(t *testing.T) {
	r, err := New(nil)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	r.Handler("help")(rec, httptest.NewRequest(http.MethodGet, "/help/", nil))

	// The quoted durations in the FAQ are HTML-escaped.
	assert.Contains(t, rec.Body.String(), "&#34;3 days&#34;")
}

func TestRenderFailureWritesJSONError(t *testing.T) {
	r, err := New(nil)
	require.NoError(t, err)
	r.templates["broken"] = template.Must(template.New("layout").Parse(`{{.NoSuchField}}`))

	rec := httptest.NewRecorder()
	rec.Header().Set("X-Request-ID", "req-render")
	r.Handler("broken")(rec, httptest.NewRequest(http.MethodGet, "/broken/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body apierrors.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, apierrors.InternalError, body.Type)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), body.Error)
	assert.Equal(t, "req-render", body.RequestID)
	assert.NotContains(t, rec.Body.String(), "<!DOCTYPE html>")
}
