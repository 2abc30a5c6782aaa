package upstream

import (
	"context"
	"encoding/json"
	"fmt"

	"podio/models"
	"podio/utils"

	"github.com/go-redis/redis/v8"
)

// EventCache fronts FetchEvent with a short-lived Redis cache so every page
// of the flow does not re-hit the upstream API for the same event.
type EventCache struct {
	api    *Client
	client *redis.Client
}

// NewEventCache builds the cache over an upstream client.
func NewEventCache(api *Client, client *redis.Client) *EventCache {
	return &EventCache{api: api, client: client}
}

// Get returns the cached event or fetches and caches it. Only successful
// lookups are cached; not-found and transient failures always re-resolve.
func (c *EventCache) Get(ctx context.Context, eventID int) (*models.Event, error) {
	key := fmt.Sprintf("event:%d", eventID)

	if data, err := c.client.Get(ctx, key).Result(); err == nil {
		var event models.Event
		if err := json.Unmarshal([]byte(data), &event); err == nil {
			return &event, nil
		}
	}

	event, err := c.api.FetchEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(event); err == nil {
		c.client.Set(ctx, key, data, utils.EventCacheTTL)
	}
	return event, nil
}
