package main

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/d60-Lab/socialnet/internal/model"
	"github.com/d60-Lab/socialnet/internal/service"
	"github.com/d60-Lab/socialnet/internal/store"
)

func pct(vs []time.Duration, p float64) time.Duration {
	if len(vs) == 0 {
		return 0
	}
	xs := append([]time.Duration(nil), vs...)
	sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })
	k := int(math.Ceil(p*float64(len(xs)))) - 1
	if k < 0 {
		k = 0
	}
	if k >= len(xs) {
		k = len(xs) - 1
	}
	return xs[k]
}

func envInt(name string, def int) int {
	if s := os.Getenv(name); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			return v
		}
	}
	return def
}

// 本地基准：灌入用户/关注/帖子后测 Feed 与 Follow 延迟分布
func main() {
	N := envInt("N", 10000)          // users
	FOLLOWS := envInt("FOLLOWS", 50) // follows per user
	POSTS := envInt("POSTS", 10)     // posts per user
	PAGE := envInt("PAGE", 50)       // feed page size
	READS := envInt("READS", 20000)  // feed reads to sample

	st := store.New("bench-admin")
	userSvc := service.NewUserService(st)
	postSvc := service.NewPostService(st)
	ctx := context.Background()

	ids := make([]model.UserID, N)
	for i := range ids {
		ids[i] = model.UserID(fmt.Sprintf("u%06d", i))
		if _, err := userSvc.Register(ctx, ids[i], fmt.Sprintf("user%06d", i), "", ""); err != nil {
			panic(err)
		}
	}

	followLat := make([]time.Duration, 0, N*FOLLOWS)
	for _, from := range ids {
		for j := 0; j < FOLLOWS; j++ {
			to := ids[rand.Intn(N)]
			if to == from {
				continue
			}
			t0 := time.Now()
			_ = userSvc.Follow(ctx, from, to)
			followLat = append(followLat, time.Since(t0))
		}
	}

	for _, id := range ids {
		for j := 0; j < POSTS; j++ {
			if _, err := postSvc.CreatePost(ctx, id, fmt.Sprintf("post %d from %s", j, id), nil); err != nil {
				panic(err)
			}
		}
	}

	feedLat := make([]time.Duration, 0, READS)
	t0 := time.Now()
	for i := 0; i < READS; i++ {
		id := ids[rand.Intn(N)]
		t1 := time.Now()
		_ = postSvc.GetFeed(ctx, id, PAGE, 0)
		feedLat = append(feedLat, time.Since(t1))
	}
	elapsed := time.Since(t0)

	fmt.Printf("users=%d follows/user=%d posts/user=%d page=%d\n", N, FOLLOWS, POSTS, PAGE)
	fmt.Printf("follow  p50=%v p99=%v\n", pct(followLat, 0.50), pct(followLat, 0.99))
	fmt.Printf("feed    p50=%v p99=%v reads/s=%.0f\n",
		pct(feedLat, 0.50), pct(feedLat, 0.99), float64(READS)/elapsed.Seconds())
}
