package middlewares

import (
	"mime"
	"net/http"
)

// HPPOptions controls HTTP parameter pollution filtering.
type HPPOptions struct {
	CheckQuery bool
	CheckBody  bool
	Whitelist  []string
}

// HPP keeps only the first value of repeated parameters and drops keys
// outside the whitelist. Body filtering applies to form-encoded POSTs only.
func HPP(opts HPPOptions) func(http.Handler) http.Handler {
	allow := make(map[string]struct{}, len(opts.Whitelist))
	for _, k := range opts.Whitelist {
		allow[k] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if opts.CheckBody && r.Method == http.MethodPost && isForm(r) {
				filterBodyParams(r, allow)
			}
			if opts.CheckQuery && r.URL.RawQuery != "" {
				filterQueryParams(r, allow)
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isForm(r *http.Request) bool {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return ct == "application/x-www-form-urlencoded"
}

func filterBodyParams(r *http.Request, allow map[string]struct{}) {
	if err := r.ParseForm(); err != nil {
		// leave parsing to the handler so it sees the same error
		r.PostForm, r.Form = nil, nil
		return
	}
	for k, v := range r.PostForm {
		if _, ok := allow[k]; !ok {
			delete(r.PostForm, k)
			delete(r.Form, k)
			continue
		}
		if len(v) > 1 {
			r.PostForm[k] = v[:1]
		}
	}
}

func filterQueryParams(r *http.Request, allow map[string]struct{}) {
	query := r.URL.Query()
	for k, v := range query {
		if _, ok := allow[k]; !ok {
			query.Del(k)
			continue
		}
		if len(v) > 1 {
			query.Set(k, v[0])
		}
	}
	r.URL.RawQuery = query.Encode()
}

func DefaultHPPOptions() HPPOptions {
	return HPPOptions{
		CheckQuery: true,
		CheckBody:  true,
		Whitelist:  []string{"id", "title", "comment"},
	}
}
