package tariff

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/ticoship/rate-service/internal/domain/model"
	"github.com/ticoship/rate-service/internal/metrics"
)

const (
	soapAction = "http://tempuri.org/ccrTarifa"
	// Field widths the web service accepts; longer values are truncated
	// locally rather than rejected remotely.
	maxLocationLen = 2
	maxServiceLen  = 3
)

// SOAPConfig holds the web service endpoint and credentials.
type SOAPConfig struct {
	URL      string
	Username string
	Password string
	Timeout  time.Duration
}

// SOAPClient calls the carrier's ccrTarifa SOAP operation over HTTP.
// One blocking call per lookup, bounded by the configured timeout; there
// is no retry loop.
type SOAPClient struct {
	config SOAPConfig
	http   *http.Client
}

// NewSOAPClient creates a tariff client for the given endpoint.
func NewSOAPClient(config SOAPConfig) *SOAPClient {
	if config.Timeout <= 0 {
		config.Timeout = 15 * time.Second
	}
	return &SOAPClient{
		config: config,
		http:   &http.Client{Timeout: config.Timeout},
	}
}

type tarifaEnvelope struct {
	XMLName xml.Name   `xml:"soap:Envelope"`
	XMLNS   string     `xml:"xmlns:soap,attr"`
	Body    tarifaBody `xml:"soap:Body"`
}

type tarifaBody struct {
	Request tarifaRequest `xml:"ccrTarifa"`
}

type tarifaRequest struct {
	XMLNS            string `xml:"xmlns,attr"`
	Usuario          string `xml:"reqTarifa>Usuario"`
	Contrasena       string `xml:"reqTarifa>Contrasena"`
	ProvinciaOrigen  string `xml:"reqTarifa>ProvinciaOrigen"`
	CantonOrigen     string `xml:"reqTarifa>CantonOrigen"`
	DistritoOrigen   string `xml:"reqTarifa>DistritoOrigen"`
	ProvinciaDestino string `xml:"reqTarifa>ProvinciaDestino"`
	CantonDestino    string `xml:"reqTarifa>CantonDestino"`
	DistritoDestino  string `xml:"reqTarifa>DistritoDestino"`
	Servicio         string `xml:"reqTarifa>Servicio"`
	Peso             string `xml:"reqTarifa>Peso"`
}

type tarifaResponseEnvelope struct {
	Body struct {
		Response struct {
			Result tarifaResult `xml:"ccrTarifaResult"`
		} `xml:"ccrTarifaResponse"`
	} `xml:"Body"`
}

type tarifaResult struct {
	CodRespuesta     string `xml:"CodRespuesta"`
	MensajeRespuesta string `xml:"MensajeRespuesta"`
	MontoTarifa      string `xml:"MontoTarifa"`
	MontoIVA         string `xml:"MontoIVA"`
}

// GetTariff performs the remote tariff lookup.
func (c *SOAPClient) GetTariff(ctx context.Context, query model.TariffQuery) (model.TariffResult, error) {
	start := time.Now()

	envelope := tarifaEnvelope{
		XMLNS: "http://schemas.xmlsoap.org/soap/envelope/",
		Body: tarifaBody{
			Request: tarifaRequest{
				XMLNS:            "http://tempuri.org/",
				Usuario:          c.config.Username,
				Contrasena:       c.config.Password,
				ProvinciaOrigen:  truncate(query.Origin.Province, maxLocationLen),
				CantonOrigen:     truncate(query.Origin.Canton, maxLocationLen),
				DistritoOrigen:   truncate(query.Origin.District, maxLocationLen),
				ProvinciaDestino: truncate(query.Destination.Province, maxLocationLen),
				CantonDestino:    truncate(query.Destination.Canton, maxLocationLen),
				DistritoDestino:  truncate(query.Destination.District, maxLocationLen),
				Servicio:         truncate(query.ServiceID, maxServiceLen),
				Peso:             strconv.FormatFloat(query.WeightGrams, 'f', 0, 64),
			},
		},
	}

	payload, err := xml.Marshal(envelope)
	if err != nil {
		return model.TariffResult{}, fmt.Errorf("tariff: encode request: %w", err)
	}
	payload = append([]byte(xml.Header), payload...)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.URL, bytes.NewReader(payload))
	if err != nil {
		return model.TariffResult{}, fmt.Errorf("tariff: build request: %w", err)
	}
	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header.Set("SOAPAction", soapAction)

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.RecordTariffLookup(time.Since(start), "error")
		log.Error().Err(err).
			Str("url", c.config.URL).
			Str("cache_key", query.CacheKey()).
			Msg("Tariff web service call failed")
		return model.TariffResult{}, fmt.Errorf("tariff: call web service: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		metrics.RecordTariffLookup(time.Since(start), "error")
		return model.TariffResult{}, fmt.Errorf("tariff: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		metrics.RecordTariffLookup(time.Since(start), "error")
		log.Error().
			Int("status", resp.StatusCode).
			Str("cache_key", query.CacheKey()).
			Bytes("body", body).
			Msg("Tariff web service returned non-200")
		return model.TariffResult{}, fmt.Errorf("tariff: web service status %d", resp.StatusCode)
	}

	var parsed tarifaResponseEnvelope
	if err := xml.Unmarshal(body, &parsed); err != nil {
		metrics.RecordTariffLookup(time.Since(start), "error")
		log.Error().Err(err).
			Str("cache_key", query.CacheKey()).
			Bytes("body", body).
			Msg("Tariff web service response unparseable")
		return model.TariffResult{}, fmt.Errorf("tariff: decode response: %w", err)
	}

	result := model.TariffResult{
		ResponseCode:    parsed.Body.Response.Result.CodRespuesta,
		ResponseMessage: parsed.Body.Response.Result.MensajeRespuesta,
		BaseRate:        parseAmount(parsed.Body.Response.Result.MontoTarifa),
		TaxAmount:       parseAmount(parsed.Body.Response.Result.MontoIVA),
	}

	if result.OK() {
		metrics.RecordTariffLookup(time.Since(start), "success")
	} else {
		metrics.RecordTariffLookup(time.Since(start), "error")
		log.Warn().
			Str("response_code", result.ResponseCode).
			Str("response_message", result.ResponseMessage).
			Str("cache_key", query.CacheKey()).
			Msg("Tariff lookup rejected by carrier")
	}
	return result, nil
}

// parseAmount reads a carrier amount field; malformed amounts become zero.
func parseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
