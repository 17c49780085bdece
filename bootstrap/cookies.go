package bootstrap

import (
	"bufio"
	"fmt"
	"net/http"
	"os"
	"strings"
)

// LoadCookies reads a cookie file: one name=value pair per line, blank
// lines and lines starting with # ignored. An empty path yields no cookies.
func LoadCookies(path string) ([]*http.Cookie, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cookies []*http.Cookie
	sc := bufio.NewScanner(f)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, value, ok := strings.Cut(line, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" || strings.ContainsAny(name, " ;\t") {
			return nil, fmt.Errorf("%s:%d: want name=value", path, n)
		}
		cookies = append(cookies, &http.Cookie{Name: name, Value: strings.TrimSpace(value)})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return cookies, nil
}

// CookieHeader renders cookies as a Cookie request header value.
func CookieHeader(cookies []*http.Cookie) string {
	parts := make([]string, len(cookies))
	for i, c := range cookies {
		parts[i] = c.Name + "=" + c.Value
	}
	return strings.Join(parts, "; ")
}
