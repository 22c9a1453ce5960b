package sheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"dog-profiles/internal/platform/httpclient"
	"dog-profiles/internal/platform/logger"
	"dog-profiles/internal/ports/rows"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// Config del cliente de Google Sheets.
type Config struct {
	SpreadsheetID string

	// JSON de la service account (contenido, no path). Se parsea en memoria:
	// nunca se escribe a disco.
	CredentialsJSON string

	// Timeout por request HTTP (token + API).
	Timeout time.Duration

	// Opcional: endpoint alternativo de la API (tests / proxies).
	Endpoint string

	// Opcional: transport HTTP de base (proxies, instrumentación, tests). nil => http.DefaultTransport.
	Transport http.RoundTripper

	// SkipAuth no agrega credenciales (emuladores, tests).
	SkipAuth bool
}

// Client implementa rows.Source leyendo la primera pestaña de la planilla.
type Client struct {
	cfg Config
	log logger.Logger

	mu  sync.Mutex
	svc *sheetsapi.Service
}

func NewClient(cfg Config, log logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	cfg.SpreadsheetID = strings.TrimSpace(cfg.SpreadsheetID)
	cfg.Endpoint = strings.TrimSpace(cfg.Endpoint)
	if cfg.Timeout <= 0 {
		cfg.Timeout = httpclient.DefaultTimeout
	}

	return &Client{
		cfg: cfg,
		log: log.With(map[string]any{"component": "sheets"}),
	}
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.cfg.SpreadsheetID != ""
}

// Rows lee todas las filas de datos: la primera fila es el header,
// las siguientes se devuelven como registros indexados por header.
func (c *Client) Rows(ctx context.Context) ([]rows.Row, error) {
	if !c.IsConfigured() {
		return nil, fmt.Errorf("%w: missing spreadsheet id", rows.ErrConfig)
	}

	svc, err := c.service()
	if err != nil {
		return nil, err
	}

	start := time.Now()

	title, err := c.firstSheetTitle(ctx, svc)
	if err != nil {
		return nil, err
	}

	resp, err := svc.Spreadsheets.Values.Get(c.cfg.SpreadsheetID, quoteSheetTitle(title)).
		ValueRenderOption("UNFORMATTED_VALUE").
		DateTimeRenderOption("FORMATTED_STRING").
		MajorDimension("ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return nil, classify(err)
	}

	records := Records(resp.Values)

	c.log.Debug("sheet read", map[string]any{
		"sheet":       title,
		"rows":        len(records),
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return records, nil
}

func (c *Client) firstSheetTitle(ctx context.Context, svc *sheetsapi.Service) (string, error) {
	ss, err := svc.Spreadsheets.Get(c.cfg.SpreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).
		Do()
	if err != nil {
		return "", classify(err)
	}
	if len(ss.Sheets) == 0 || ss.Sheets[0].Properties == nil {
		return "", fmt.Errorf("%w: spreadsheet has no sheets", rows.ErrFetch)
	}
	return ss.Sheets[0].Properties.Title, nil
}

// service arma el cliente de la API una sola vez (después de un armado exitoso).
// Credenciales ausentes o inválidas => rows.ErrCredentials en cada intento.
func (c *Client) service() (*sheetsapi.Service, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.svc != nil {
		return c.svc, nil
	}

	base := httpclient.NewWithTransport(c.cfg.Timeout, c.cfg.Transport)

	hc := base
	opts := []option.ClientOption{}
	if c.cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(strings.TrimRight(c.cfg.Endpoint, "/")+"/"))
	}

	if !c.cfg.SkipAuth {
		raw := strings.TrimSpace(c.cfg.CredentialsJSON)
		if raw == "" {
			return nil, fmt.Errorf("%w: missing GOOGLE_SERVICE_KEY environment variable", rows.ErrCredentials)
		}

		// El token source guarda este ctx: debe ser de larga vida y usar nuestro timeout.
		tokenCtx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
		creds, err := google.CredentialsFromJSON(tokenCtx, []byte(raw), sheetsapi.SpreadsheetsReadonlyScope)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to parse service account credentials: %v", rows.ErrCredentials, err)
		}
		hc = httpclient.WithTokenSource(base, tokenSource{creds.TokenSource})
	}

	opts = append(opts, option.WithHTTPClient(hc))

	// El ctx de NewService sólo se usa durante la construcción.
	svc, err := sheetsapi.NewService(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create sheets client: %v", rows.ErrCredentials, err)
	}

	c.svc = svc
	return svc, nil
}

// tokenSource marca los errores al obtener el access token (key inválida, credencial revocada)
// para poder distinguirlos de fallas de la API.
type tokenSource struct {
	ts oauth2.TokenSource
}

func (s tokenSource) Token() (*oauth2.Token, error) {
	t, err := s.ts.Token()
	if err != nil {
		return nil, &tokenError{err: err}
	}
	return t, nil
}

type tokenError struct {
	err error
}

func (e *tokenError) Error() string { return "token: " + e.err.Error() }
func (e *tokenError) Unwrap() error { return e.err }

// classify traduce errores de la API/transporte a las clases de rows.
func classify(err error) error {
	var terr *tokenError
	var rerr *oauth2.RetrieveError
	if errors.As(err, &terr) || errors.As(err, &rerr) {
		return fmt.Errorf("%w: %v", rows.ErrCredentials, err)
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %v", rows.ErrCredentials, err)
		case http.StatusNotFound:
			return fmt.Errorf("%w: spreadsheet not found: %v", rows.ErrFetch, err)
		}
	}

	return fmt.Errorf("%w: %v", rows.ErrFetch, err)
}

// quoteSheetTitle arma un rango A1 que cubre toda la pestaña.
func quoteSheetTitle(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}
