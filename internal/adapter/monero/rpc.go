// Package monero talks JSON-RPC to monerod and monero-wallet-rpc.
package monero

import (
	"bytes"
	"context"
	"crypto/md5"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const jsonRPCPath = "/json_rpc"

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *RPCError       `json:"error"`
	ID     string          `json:"id"`
}

// RPCError is an error object returned by the remote JSON-RPC server.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// rpcClient is a JSON-RPC 2.0 client for the monero daemon and wallet RPC
// servers. Both only accept HTTP digest authentication when credentials are
// configured.
type rpcClient struct {
	httpClient *http.Client
	url        string
	username   string
	password   string

	mu     sync.Mutex
	digest *digestChallenge
	nc     uint32
}

func newRPCClient(baseURI, username, password string, timeout time.Duration) (*rpcClient, error) {
	u, err := url.Parse(baseURI)
	if err != nil {
		return nil, fmt.Errorf("parse rpc uri: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("rpc uri %q: scheme must be http or https", baseURI)
	}
	if u.User != nil {
		if username == "" {
			username = u.User.Username()
		}
		if password == "" {
			password, _ = u.User.Password()
		}
		u.User = nil
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + jsonRPCPath

	return &rpcClient{
		httpClient: &http.Client{Timeout: timeout},
		url:        u.String(),
		username:   username,
		password:   password,
	}, nil
}

// call performs one JSON-RPC request and decodes its result into out.
func (c *rpcClient) call(ctx context.Context, method string, params, out any) error {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      "0",
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", method, err)
	}

	resp, err := c.post(ctx, body)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: read response: %w", method, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: unexpected http status %d", method, resp.StatusCode)
	}

	var rpcResp rpcResponse
	if err := json.Unmarshal(raw, &rpcResp); err != nil {
		return fmt.Errorf("%s: unmarshal response: %w", method, err)
	}
	if rpcResp.Error != nil {
		return fmt.Errorf("%s: %w", method, rpcResp.Error)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(rpcResp.Result, out); err != nil {
		return fmt.Errorf("%s: unmarshal result: %w", method, err)
	}
	return nil
}

func (c *rpcClient) post(ctx context.Context, body []byte) (*http.Response, error) {
	resp, err := c.send(ctx, body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized || c.username == "" {
		return resp, nil
	}

	// Stale or missing nonce: take the fresh challenge and retry once.
	challenge, err := parseDigestChallenge(resp.Header.Values("WWW-Authenticate"))
	resp.Body.Close()
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.digest = challenge
	c.nc = 0
	c.mu.Unlock()

	return c.send(ctx, body)
}

func (c *rpcClient) send(ctx context.Context, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if auth := c.authorization(req.Method, req.URL.RequestURI()); auth != "" {
		req.Header.Set("Authorization", auth)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

type digestChallenge struct {
	realm     string
	nonce     string
	opaque    string
	qop       string
	algorithm string
}

// parseDigestChallenge picks the first MD5 digest challenge among the
// WWW-Authenticate header values.
func parseDigestChallenge(headers []string) (*digestChallenge, error) {
	for _, h := range headers {
		scheme, rest, ok := strings.Cut(strings.TrimSpace(h), " ")
		if !ok || !strings.EqualFold(scheme, "Digest") {
			continue
		}
		params := parseAuthParams(rest)
		alg := params["algorithm"]
		if alg != "" && !strings.EqualFold(alg, "MD5") {
			continue
		}
		ch := &digestChallenge{
			realm:     params["realm"],
			nonce:     params["nonce"],
			opaque:    params["opaque"],
			algorithm: alg,
		}
		for _, q := range strings.Split(params["qop"], ",") {
			if strings.TrimSpace(q) == "auth" {
				ch.qop = "auth"
			}
		}
		if ch.nonce == "" {
			continue
		}
		return ch, nil
	}
	return nil, errors.New("server requires authentication but sent no usable digest challenge")
}

func parseAuthParams(s string) map[string]string {
	params := make(map[string]string)
	for len(s) > 0 {
		s = strings.TrimLeft(s, " ,")
		key, rest, ok := strings.Cut(s, "=")
		if !ok {
			break
		}
		key = strings.ToLower(strings.TrimSpace(key))
		var val string
		if strings.HasPrefix(rest, `"`) {
			end := strings.Index(rest[1:], `"`)
			if end < 0 {
				val, s = rest[1:], ""
			} else {
				val, s = rest[1:end+1], rest[end+2:]
			}
		} else {
			val, s, _ = strings.Cut(rest, ",")
			val = strings.TrimSpace(val)
		}
		params[key] = val
	}
	return params
}

func (c *rpcClient) authorization(method, uri string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.digest == nil || c.username == "" {
		return ""
	}
	ch := c.digest
	c.nc++

	ha1 := md5Hex(c.username + ":" + ch.realm + ":" + c.password)
	ha2 := md5Hex(method + ":" + uri)

	var b strings.Builder
	fmt.Fprintf(&b, `Digest username="%s", realm="%s", nonce="%s", uri="%s"`, c.username, ch.realm, ch.nonce, uri)
	if ch.qop == "auth" {
		nc := fmt.Sprintf("%08x", c.nc)
		cnonce := randomHex(8)
		response := md5Hex(ha1 + ":" + ch.nonce + ":" + nc + ":" + cnonce + ":auth:" + ha2)
		fmt.Fprintf(&b, `, qop=auth, nc=%s, cnonce="%s", response="%s"`, nc, cnonce, response)
	} else {
		fmt.Fprintf(&b, `, response="%s"`, md5Hex(ha1+":"+ch.nonce+":"+ha2))
	}
	if ch.algorithm != "" {
		fmt.Fprintf(&b, `, algorithm=%s`, ch.algorithm)
	}
	if ch.opaque != "" {
		fmt.Fprintf(&b, `, opaque="%s"`, ch.opaque)
	}
	return b.String()
}

func md5Hex(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

func randomHex(n int) string {
	buf := make([]byte, n)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
