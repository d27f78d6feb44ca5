package clients

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/netip"
	neturl "net/url"
	"strings"
	"syscall"
	"time"

	"golang.org/x/net/html"
)

const (
	maxPageBytes     = 5 << 20
	defaultUserAgent = "Mozilla/5.0 (compatible; woodpantry-recipes/1.0)"
)

// FetchError means the caption text could not be obtained for URL.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch caption %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// CaptionClient fetches a post page and reads its caption from the og:description
// meta tag, which is where social sites put the post text for link previews.
type CaptionClient struct {
	httpClient *http.Client
	userAgent  string
}

func NewCaptionClient(httpClient *http.Client) *CaptionClient {
	return &CaptionClient{httpClient: httpClient, userAgent: defaultUserAgent}
}

// Fetch returns the caption text of the page at url. A page without an
// og:description tag yields an empty caption, not an error. Only http and https
// URLs are fetched.
func (c *CaptionClient) Fetch(ctx context.Context, url string) (string, error) {
	u, err := neturl.Parse(url)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", &FetchError{URL: url, Err: errUnsupportedURL}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &FetchError{URL: url, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	doc, err := html.Parse(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return "", &FetchError{URL: url, Err: fmt.Errorf("parse html: %w", err)}
	}
	return ogDescription(doc), nil
}

var errUnsupportedURL = errors.New("only absolute http and https URLs are supported")

// NewPublicHTTPClient returns a client that refuses to connect to loopback,
// private, link-local and unspecified addresses. The check runs on the resolved
// address at dial time, so redirects and DNS answers are covered too.
func NewPublicHTTPClient(timeout time.Duration) *http.Client {
	dialer := &net.Dialer{
		Timeout:   10 * time.Second,
		KeepAlive: 30 * time.Second,
		Control:   refuseNonPublic,
	}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = nil
	transport.DialContext = dialer.DialContext
	return &http.Client{Timeout: timeout, Transport: transport}
}

func refuseNonPublic(_, address string, _ syscall.RawConn) error {
	ap, err := netip.ParseAddrPort(address)
	if err != nil {
		return fmt.Errorf("refusing to connect to %s: %w", address, err)
	}
	if !isPublic(ap.Addr()) {
		return fmt.Errorf("refusing to connect to non-public address %s", ap.Addr())
	}
	return nil
}

func isPublic(addr netip.Addr) bool {
	addr = addr.Unmap()
	return addr.IsValid() &&
		!addr.IsLoopback() &&
		!addr.IsPrivate() &&
		!addr.IsLinkLocalUnicast() &&
		!addr.IsLinkLocalMulticast() &&
		!addr.IsInterfaceLocalMulticast() &&
		!addr.IsMulticast() &&
		!addr.IsUnspecified()
}

func ogDescription(doc *html.Node) string {
	var found string
	var walk func(*html.Node) bool
	walk = func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "meta" {
			var property, content string
			for _, attr := range n.Attr {
				switch attr.Key {
				case "property":
					property = attr.Val
				case "content":
					content = attr.Val
				}
			}
			if property == "og:description" {
				found = strings.TrimSpace(content)
				return true
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			if walk(child) {
				return true
			}
		}
		return false
	}
	walk(doc)
	return found
}
