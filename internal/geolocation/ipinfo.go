package geolocation

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/2beens/mapty/internal/telemetry/tracing"
	"github.com/2beens/mapty/internal/workout"

	"github.com/ipinfo/go/v2/ipinfo"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
)

var _ Geolocator = (*IPInfo)(nil)

// IPInfo locates the machine by its public IP, using ipinfo.io.
type IPInfo struct {
	client *ipinfo.Client
}

// NewIPInfo creates the provider. A nil httpClient gets a traced one with a 10s timeout.
func NewIPInfo(httpClient *http.Client, token string) *IPInfo {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   10 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	return &IPInfo{
		client: ipinfo.NewClient(httpClient, nil, token),
	}
}

// WithBaseURL points the client at another ipinfo compatible endpoint.
func (p *IPInfo) WithBaseURL(baseURL string) (*IPInfo, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	p.client.BaseURL = u
	return p, nil
}

func (p *IPInfo) CurrentPosition(onSuccess func(workout.Coords), onFailure func(error)) {
	go func() {
		coords, err := p.lookup()
		if err != nil {
			log.Errorf("ipinfo lookup: %s", err)
			onFailure(fmt.Errorf("%w: %w", ErrPositionUnavailable, err))
			return
		}
		onSuccess(coords)
	}()
}

func (p *IPInfo) lookup() (_ workout.Coords, err error) {
	_, span := tracing.GlobalTracer.Start(context.Background(), "geolocation.ipinfo.lookup")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	info, err := p.client.GetIPInfo(nil)
	if err != nil {
		return workout.Coords{}, err
	}
	span.SetAttributes(attribute.String("location", info.Location))
	log.Debugf("ipinfo: ip [%s], city [%s], location [%s]", info.IP, info.City, info.Location)

	return parseLocation(info.Location)
}
