package famstock

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"time"
)

// http utils to deal with the remote market data and news services.

// diskCache caches successful HTTP responses on disk for a bounded
// freshness window. The cache key embeds the wall-clock time bucket, so
// entries expire by falling out of the current bucket rather than by
// deletion. The clock is injectable for tests.
type diskCache struct {
	base   http.RoundTripper
	window time.Duration
	now    func() time.Time
}

func (c *diskCache) RoundTrip(req *http.Request) (*http.Response, error) {
	bucket := c.now().Unix() / int64(c.window.Seconds())
	key := fmt.Sprintf("%d %s %s", bucket, req.Method, req.URL.String())
	key = fmt.Sprintf("famstock-%x", sha1.Sum([]byte(key)))

	if resp, err := c.get(key, req); err == nil { // cache hit
		return resp, nil
	}

	resp, err := c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v%v %v", req.Method, req.URL.Host, req.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}
	if err := c.put(key, resp); err != nil {
		log.Printf("cache write err (ignored): %v", err)
	}
	return resp, nil
}

// get retrieves a cached response from disk.
func (c *diskCache) get(key string, req *http.Request) (*http.Response, error) {
	content, err := os.ReadFile(filepath.Join(os.TempDir(), key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewReader(content)), req)
}

// put stores a response to the disk cache. DumpResponse leaves the
// body readable for the caller.
func (c *diskCache) put(key string, resp *http.Response) error {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(os.TempDir(), key), content, 0644)
}

// cachedClient returns an HTTP client whose responses stay fresh for
// the given window.
func cachedClient(window time.Duration) *http.Client {
	return &http.Client{
		Transport: &diskCache{base: http.DefaultTransport, window: window, now: time.Now},
	}
}

// jwget performs an HTTP GET and unmarshals the JSON response body into
// data.
func jwget(client *http.Client, addr string, data any) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, data)
}
