/*
File    : vexel/std/http.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package std

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/stuncs69/vexel/objects"
)

var httpMethods = []*Builtin{
	{Name: "http_get", Callback: httpGet},
	{Name: "http_post", Callback: httpPost},
	{Name: "http_put", Callback: httpPut},
	{Name: "http_delete", Callback: httpDelete},
}

func init() {
	register(httpMethods)
}

var httpClient = &http.Client{Timeout: 10 * time.Second}

// doRequest returns the response body as a String; network errors and
// non-2xx responses are both absent (spec §6 -- there is no Vexel-level
// way to inspect a status code, so a failed request is indistinguishable
// from a malformed one).
func doRequest(method, url, body string) (objects.Value, bool) {
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		return nil, false
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, false
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, false
	}
	return &objects.String{Value: string(data)}, true
}

func httpGet(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 1 {
		return nil, false
	}
	url, ok := asString(args[0])
	if !ok {
		return nil, false
	}
	return doRequest(http.MethodGet, url, "")
}

func httpPost(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 2 {
		return nil, false
	}
	url, ok1 := asString(args[0])
	body, ok2 := asString(args[1])
	if !ok1 || !ok2 {
		return nil, false
	}
	return doRequest(http.MethodPost, url, body)
}

func httpPut(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 2 {
		return nil, false
	}
	url, ok1 := asString(args[0])
	body, ok2 := asString(args[1])
	if !ok1 || !ok2 {
		return nil, false
	}
	return doRequest(http.MethodPut, url, body)
}

func httpDelete(rt Runtime, args []objects.Value) (objects.Value, bool) {
	if len(args) != 1 {
		return nil, false
	}
	url, ok := asString(args[0])
	if !ok {
		return nil, false
	}
	return doRequest(http.MethodDelete, url, "")
}
