package services

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Flash is a one-shot user-facing notification, the server-rendered
// equivalent of a toast. Pushed before a redirect, popped on the next
// render.
type Flash struct {
	Kind    string `json:"kind"` // "success" or "error"
	Message string `json:"message"`
}

const (
	flashCookie = "vm_flash"
	flashTTL    = 10 * time.Minute
)

// FlashService stores pending flashes in Redis keyed by a per-browser
// cookie, so they survive the redirect between a mutation and the page
// that reports it.
type FlashService struct {
	rdb *redis.Client
}

func NewFlashService(rdb *redis.Client) *FlashService {
	return &FlashService{rdb: rdb}
}

func (f *FlashService) Success(c *gin.Context, message string) {
	f.push(c, Flash{Kind: "success", Message: message})
}

func (f *FlashService) Error(c *gin.Context, message string) {
	f.push(c, Flash{Kind: "error", Message: message})
}

func (f *FlashService) push(c *gin.Context, flash Flash) {
	id, err := c.Cookie(flashCookie)
	if err != nil || id == "" {
		id = uuid.NewString()
		c.SetCookie(flashCookie, id, int(flashTTL/time.Second), "/", "", false, true)
	}

	payload, _ := json.Marshal(flash)
	key := "flash:" + id
	ctx := c.Request.Context()
	if err := f.rdb.RPush(ctx, key, payload).Err(); err != nil {
		log.Printf("[flash] failed to store flash: %v", err)
		return
	}
	f.rdb.Expire(ctx, key, flashTTL)
}

// Pop drains and returns the pending flashes for this browser.
func (f *FlashService) Pop(c *gin.Context) []Flash {
	id, err := c.Cookie(flashCookie)
	if err != nil || id == "" {
		return nil
	}

	key := "flash:" + id
	ctx := c.Request.Context()
	raw, err := f.rdb.LRange(ctx, key, 0, -1).Result()
	if err != nil || len(raw) == 0 {
		return nil
	}
	f.rdb.Del(ctx, key)

	flashes := make([]Flash, 0, len(raw))
	for _, r := range raw {
		var flash Flash
		if err := json.Unmarshal([]byte(r), &flash); err == nil {
			flashes = append(flashes, flash)
		}
	}
	return flashes
}
