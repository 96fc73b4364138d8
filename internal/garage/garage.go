// Package garage bootstraps the cluster layout of a Garage object store
// through its admin API.
package garage

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/hashicorp/go-retryablehttp"
	mHttp "github.com/matt-dz/foodgram/internal/http"
	mJson "github.com/matt-dz/foodgram/internal/json"
)

type role struct {
	Zone     string   `json:"zone"`
	Tags     []string `json:"tags"`
	Capacity int64    `json:"capacity"`
	ID       string   `json:"id"`
}

type node struct {
	ID       string  `json:"id"`
	Hostname *string `json:"hostname"`
	IsUp     *bool   `json:"isUp"`
}

type clusterStatus struct {
	LayoutVersion int    `json:"layoutVersion"`
	Nodes         []node `json:"nodes"`
}

type zoneRedundancy struct {
	AtLeast int64 `json:"atLeast"`
}

type layoutParameters struct {
	ZoneRedundancy zoneRedundancy `json:"zoneRedundancy"`
}

type updateLayoutRequest struct {
	Parameters layoutParameters `json:"parameters"`
	Roles      []role           `json:"roles"`
}

type applyLayoutRequest struct {
	Version int64 `json:"version"`
}

var ErrNoNodes = errors.New("no nodes found in garage cluster")

const (
	defaultZone           = "dc1"
	defaultCapacity int64 = 500_000_000_000 // 500 GB
)

var layoutTags = []string{"storage"}

type Client struct {
	http       mHttp.HTTPDoer
	baseURL    string
	adminToken string
}

func NewClient(doer mHttp.HTTPDoer, adminHost, adminToken string) *Client {
	return &Client{
		http:       doer,
		baseURL:    "http://" + adminHost,
		adminToken: adminToken,
	}
}

func (c *Client) do(ctx context.Context, method, endpoint string, body any, dst any) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("marshaling %s request: %w", endpoint, err)
		}
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.baseURL+"/v2/"+endpoint, payload)
	if err != nil {
		return fmt.Errorf("creating %s request: %w", endpoint, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.adminToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", endpoint, err)
	}
	if err := mHttp.ExpectStatus2xx(resp); err != nil {
		return fmt.Errorf("%s failed: %w", endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if dst == nil {
		return nil
	}
	if err := mJson.DecodeJSON(dst, json.NewDecoder(resp.Body)); err != nil {
		return fmt.Errorf("decoding %s response: %w", endpoint, err)
	}
	return nil
}

// InitializeLayout assigns every known node a storage role and applies the
// layout. A cluster whose layout version is already positive is left alone.
func (c *Client) InitializeLayout(ctx context.Context) error {
	var status clusterStatus
	if err := c.do(ctx, http.MethodGet, "GetClusterStatus", nil, &status); err != nil {
		return err
	}
	if status.LayoutVersion > 0 {
		return nil
	}
	if len(status.Nodes) == 0 {
		return ErrNoNodes
	}

	update := updateLayoutRequest{
		Parameters: layoutParameters{ZoneRedundancy: zoneRedundancy{AtLeast: 1}},
		Roles:      make([]role, 0, len(status.Nodes)),
	}
	for _, n := range status.Nodes {
		update.Roles = append(update.Roles, role{
			Zone:     defaultZone,
			Capacity: defaultCapacity,
			Tags:     layoutTags,
			ID:       n.ID,
		})
	}
	if err := c.do(ctx, http.MethodPost, "UpdateClusterLayout", update, nil); err != nil {
		return err
	}

	apply := applyLayoutRequest{Version: int64(status.LayoutVersion + 1)}
	return c.do(ctx, http.MethodPost, "ApplyClusterLayout", apply, nil)
}

