package automatic

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestStatusRouter(t *testing.T) {
	is := is.New(t)
	r := NewStatusRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/status", nil))
	is.Equal(rec.Code, http.StatusOK)
	var st Status
	is.NoErr(json.NewDecoder(rec.Body).Decode(&st))
	is.Equal(st.GamesPlayed, GamesCounter.Value())
	is.True(!st.Playing)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/debug/vars", nil))
	is.Equal(rec.Code, http.StatusOK)
	is.True(strings.Contains(rec.Body.String(), `"autoplayGames"`))

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("POST", "/status", nil))
	is.Equal(rec.Code, http.StatusMethodNotAllowed)
}
