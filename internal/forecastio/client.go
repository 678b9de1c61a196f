package forecastio

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/rs/zerolog"
)

const (
	HeaderCacheControl = "Cache-Control"
	HeaderExpires      = "Expires"
	HeaderAPICalls     = "X-Forecast-API-Calls"
	HeaderResponseTime = "X-Response-Time"
)

// Metadata holds the response headers captured from the last successful
// fetch. Missing lists the headers the API did not send.
type Metadata struct {
	StatusCode   int
	CacheControl string
	Expires      string
	APICalls     int
	ResponseTime string
	Missing      []string
}

// Client fetches forecasts for one configuration and keeps the most recent
// response. It holds no locks: a Client must not be used by more than one
// goroutine at a time. Build one Client per goroutine from shared Settings
// instead.
type Client struct {
	settings   Settings
	httpClient *http.Client
	logger     zerolog.Logger

	initial *[2]string

	raw      []byte
	metadata *Metadata
	document Document
}

// New validates the configuration and returns a Client. When
// WithCoordinates is given the forecast is fetched before returning; if
// that fetch fails the Client is still returned along with the error so
// the caller can retry.
func New(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	c := &Client{
		settings: DefaultSettings(apiKey),
		logger:   defaultLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.settings.Validate(); err != nil {
		return nil, err
	}

	hc := http.Client{Timeout: 10 * time.Second}
	if c.httpClient != nil {
		hc = *c.httpClient
	}
	hc.CheckRedirect = c.checkRedirect
	c.httpClient = &hc

	if c.initial != nil {
		if err := c.Fetch(ctx, c.initial[0], c.initial[1]); err != nil {
			return c, err
		}
	}

	return c, nil
}

func (c *Client) checkRedirect(req *http.Request, via []*http.Request) error {
	if len(via) > c.settings.MaxRedirects {
		return fmt.Errorf("%w: stopped after %d", ErrTooManyRedirects, c.settings.MaxRedirects)
	}
	return nil
}

// Settings returns a copy of the client configuration.
func (c *Client) Settings() Settings {
	return c.settings
}

// SetTime changes the time specifier used by later fetches. A blank value
// requests the current forecast.
func (c *Client) SetTime(t string) {
	c.settings.Time = t
}

// SetExclude changes the comma separated list of sections the API should
// leave out of later responses.
func (c *Client) SetExclude(exclude string) {
	c.settings.Exclude = exclude
}

// FetchAt is Fetch for numeric coordinates.
func (c *Client) FetchAt(ctx context.Context, latitude, longitude float64) error {
	return c.Fetch(ctx, FormatCoordinate(latitude), FormatCoordinate(longitude))
}

// Fetch requests the forecast for the coordinates and, on success, replaces
// the stored response, metadata and document. On failure the previous
// state is kept.
func (c *Client) Fetch(ctx context.Context, latitude, longitude string) error {
	requestURL, err := c.BuildRequestURL(latitude, longitude)
	if err != nil {
		return err
	}

	logger := c.logger.With().Str("latitude", latitude).Str("longitude", longitude).Logger()

	body, metadata, err := c.get(ctx, requestURL)
	if err != nil {
		logger.Error().Err(err).Msg("forecast fetch failed")
		return err
	}

	doc, err := decodeDocument(body)
	if err != nil {
		logger.Error().Err(err).Msg("forecast decode failed")
		return err
	}

	c.raw = body
	c.metadata = metadata
	c.document = doc

	logger.Debug().
		Int("api_calls", metadata.APICalls).
		Str("response_time", metadata.ResponseTime).
		Strs("sections", doc.Present()).
		Msg("forecast fetched")

	return nil
}

func (c *Client) get(ctx context.Context, requestURL string) ([]byte, *Metadata, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	req.Header.Set("Accept-Encoding", "gzip, deflate")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, &HTTPError{StatusCode: resp.StatusCode, Status: resp.Status, URL: requestURL}
	}

	metadata := c.captureMetadata(resp)

	body, err := readBody(resp)
	if err != nil {
		if errors.Is(err, ErrDecode) {
			return nil, nil, err
		}
		return nil, nil, classifyTransportError(err)
	}

	return body, metadata, nil
}

func (c *Client) captureMetadata(resp *http.Response) *Metadata {
	m := &Metadata{StatusCode: resp.StatusCode}

	header := func(name string) string {
		values := resp.Header.Values(name)
		if len(values) == 0 {
			m.Missing = append(m.Missing, name)
			return ""
		}
		return values[0]
	}

	m.CacheControl = header(HeaderCacheControl)
	m.Expires = header(HeaderExpires)
	if calls := header(HeaderAPICalls); calls != "" {
		n, err := strconv.Atoi(strings.TrimSpace(calls))
		if err != nil {
			c.logger.Warn().Str("header", HeaderAPICalls).Str("value", calls).Msg("could not parse api call count")
		}
		m.APICalls = n
	}
	m.ResponseTime = header(HeaderResponseTime)

	if len(m.Missing) > 0 {
		c.logger.Warn().Strs("headers", m.Missing).Msg("could not get headers")
	}

	return m
}

// readBody returns the decompressed response body. The transport only
// decompresses on its own when it set Accept-Encoding itself, so encoded
// bodies are handled here.
func readBody(resp *http.Response) ([]byte, error) {
	switch strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding"))) {
	case "gzip", "x-gzip":
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		defer gz.Close()
		return readDecompressed(gz, "gzip")
	case "deflate":
		return readDeflate(resp.Body)
	}

	return io.ReadAll(resp.Body)
}

// readDecompressed reads a decompressing reader to the end. Corrupt streams
// are reported as ErrDecode, any other read error is returned as is.
func readDecompressed(r io.Reader, encoding string) ([]byte, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		var corrupt flate.CorruptInputError
		if errors.As(err, &corrupt) ||
			errors.Is(err, gzip.ErrHeader) || errors.Is(err, gzip.ErrChecksum) ||
			errors.Is(err, zlib.ErrHeader) || errors.Is(err, zlib.ErrChecksum) ||
			errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: %s: %v", ErrDecode, encoding, err)
		}
		return nil, err
	}
	return body, nil
}

// readDeflate accepts both zlib wrapped and raw deflate streams since
// servers disagree on what "deflate" means.
func readDeflate(body io.Reader) ([]byte, error) {
	br := bufio.NewReader(body)
	head, err := br.Peek(2)
	if err == nil && isZlibHeader(head) {
		zr, err := zlib.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		defer zr.Close()
		return readDecompressed(zr, "deflate")
	}

	fr := flate.NewReader(br)
	defer fr.Close()
	return readDecompressed(fr, "deflate")
}

func isZlibHeader(b []byte) bool {
	return b[0]&0x0f == 8 && (uint16(b[0])<<8|uint16(b[1]))%31 == 0
}

// Fetched reports whether a fetch has succeeded.
func (c *Client) Fetched() bool {
	return c.document != nil
}

// RawResponse returns the body of the last successful fetch.
func (c *Client) RawResponse() ([]byte, error) {
	if !c.Fetched() {
		return nil, ErrNoDocument
	}
	return bytes.Clone(c.raw), nil
}

func (c *Client) Metadata() (Metadata, error) {
	if c.metadata == nil {
		return Metadata{}, ErrNoDocument
	}
	return *c.metadata, nil
}

func (c *Client) Document() (Document, error) {
	if !c.Fetched() {
		return nil, ErrNoDocument
	}
	return c.document, nil
}

// HasSection reports whether the last document carries the section. It is
// false before the first successful fetch.
func (c *Client) HasSection(name string) bool {
	return c.document.Has(name)
}

// Section returns the raw JSON of a section, or nil when it is absent or
// nothing has been fetched.
func (c *Client) Section(name string) json.RawMessage {
	return c.document.Get(name)
}

// DecodeSection unmarshals a section of the last document into v.
func (c *Client) DecodeSection(name string, v any) (bool, error) {
	if !c.Fetched() {
		return false, ErrNoDocument
	}
	return c.document.Decode(name, v)
}

func (c *Client) HasCurrently() bool { return c.HasSection(SectionCurrently) }
func (c *Client) HasMinutely() bool  { return c.HasSection(SectionMinutely) }
func (c *Client) HasHourly() bool    { return c.HasSection(SectionHourly) }
func (c *Client) HasDaily() bool     { return c.HasSection(SectionDaily) }
func (c *Client) HasFlags() bool     { return c.HasSection(SectionFlags) }
func (c *Client) HasAlerts() bool    { return c.HasSection(SectionAlerts) }

func (c *Client) GetCurrently() json.RawMessage { return c.Section(SectionCurrently) }
func (c *Client) GetMinutely() json.RawMessage  { return c.Section(SectionMinutely) }
func (c *Client) GetHourly() json.RawMessage    { return c.Section(SectionHourly) }
func (c *Client) GetDaily() json.RawMessage     { return c.Section(SectionDaily) }
func (c *Client) GetFlags() json.RawMessage     { return c.Section(SectionFlags) }
func (c *Client) GetAlerts() json.RawMessage    { return c.Section(SectionAlerts) }
