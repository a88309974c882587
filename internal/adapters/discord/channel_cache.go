package discord

import (
	"sync"
	"time"
)

// channelTTL bounds how long a resolved feed channel is trusted before the
// guild is asked again, so a recreated channel is picked up.
const channelTTL = 30 * time.Minute

type cachedChannel struct {
	id      string
	expires time.Time
}

type channelKey struct {
	guildID string
	name    string
}

type channelCache struct {
	mu    sync.RWMutex
	items map[channelKey]cachedChannel
	ttl   time.Duration
	now   func() time.Time
}

func newChannelCache() *channelCache {
	return &channelCache{
		items: make(map[channelKey]cachedChannel),
		ttl:   channelTTL,
		now:   time.Now,
	}
}

func (c *channelCache) Get(guildID, channelName string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[channelKey{guildID, channelName}]
	if !ok || !c.now().Before(item.expires) {
		return "", false
	}
	return item.id, true
}

func (c *channelCache) Set(guildID, channelName, id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[channelKey{guildID, channelName}] = cachedChannel{id: id, expires: c.now().Add(c.ttl)}
}

func (c *channelCache) Invalidate(guildID, channelName string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, channelKey{guildID, channelName})
}
