// File: internal/handler/users/cache.go
package users

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"rest-boilerplate/internal/cache"
	"rest-boilerplate/internal/dto"
)

const userCacheTTL = 5 * time.Minute

func userCacheKey(id int) string { return fmt.Sprintf("user:%d", id) }

// cachedUser 讀取快取中的使用者
// rdb 為 nil（Redis 不可用）、未命中或內容無法解析時一律回傳 false
func cachedUser(ctx context.Context, rdb cache.Cache, id int) (*dto.UserResponse, bool) {
	if rdb == nil {
		return nil, false
	}
	raw, err := rdb.Get(ctx, userCacheKey(id)).Result()
	if err != nil {
		return nil, false
	}
	var u dto.UserResponse
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, false
	}
	return &u, true
}

// cacheUser 寫入快取，寫入失敗不影響回應
func cacheUser(ctx context.Context, rdb cache.Cache, u dto.UserResponse) {
	if rdb == nil {
		return
	}
	raw, err := json.Marshal(u)
	if err != nil {
		return
	}
	rdb.Set(ctx, userCacheKey(u.ID), raw, userCacheTTL)
}

// dropCachedUser 讓指定使用者的快取失效，更新與刪除後呼叫
func dropCachedUser(ctx context.Context, rdb cache.Cache, id int) {
	if rdb == nil {
		return
	}
	rdb.Del(ctx, userCacheKey(id))
}
