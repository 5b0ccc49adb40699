package utility

import (
	"sync"
	"time"
)

// cacheItem là một entry trong cache kèm thời điểm hết hạn
type cacheItem struct {
	value     interface{}
	expiresAt time.Time
}

// Cache là cache in-memory thread-safe với TTL theo từng entry.
// Dùng cho tra cứu principal trong middleware xác thực.
type Cache struct {
	items    map[string]cacheItem
	mu       sync.RWMutex
	ttl      time.Duration
	stopChan chan struct{}
}

// NewCache tạo cache mới với TTL và chu kỳ dọn dẹp cho trước
func NewCache(ttl, cleanup time.Duration) *Cache {
	cache := &Cache{
		items:    make(map[string]cacheItem),
		ttl:      ttl,
		stopChan: make(chan struct{}),
	}
	go cache.cleanupLoop(cleanup)
	return cache
}

// Set lưu giá trị vào cache với TTL mặc định của cache
func (c *Cache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = cacheItem{
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// Get lấy giá trị từ cache. Entry đã hết hạn được coi là không tồn tại.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, exists := c.items[key]
	if !exists || time.Now().After(item.expiresAt) {
		return nil, false
	}
	return item.value, true
}

// Delete xóa một entry khỏi cache (dùng khi tài khoản bị cập nhật)
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Stop dừng goroutine dọn dẹp của cache
func (c *Cache) Stop() {
	close(c.stopChan)
}

// cleanupLoop xóa các entry đã hết hạn theo chu kỳ
func (c *Cache) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			c.mu.Lock()
			for k, item := range c.items {
				if now.After(item.expiresAt) {
					delete(c.items, k)
				}
			}
			c.mu.Unlock()
		case <-c.stopChan:
			return
		}
	}
}
