package devsession_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aretw0/devsession/pkg/adapters/memory"
	"github.com/aretw0/devsession/pkg/domain"
	"github.com/aretw0/devsession/pkg/persistence/middleware"
	"github.com/aretw0/devsession/pkg/ports"
	"github.com/aretw0/devsession/pkg/session"
)

func Example() {
	ctx := context.Background()

	cache, err := session.New(session.Config{Store: memory.NewStore()})
	if err != nil {
		panic(err)
	}

	entry, _ := cache.Get(ctx, "laptop")
	fmt.Println("before:", entry.Len())

	_, err = cache.Put(ctx, "laptop", domain.NewEntry(
		domain.SessionDescriptor(`{"id":"s1"}`),
		domain.SessionDescriptor(`{"id":"s2"}`),
	))
	if err != nil {
		panic(err)
	}

	entry, _ = cache.Get(ctx, "laptop")
	fmt.Println("after:", entry.Len())
	fmt.Println(string(entry.Sessions[0]))

	// Output:
	// before: 0
	// after: 2
	// {"id":"s1"}
}

func Example_encrypted() {
	ctx := context.Background()
	raw := memory.NewStore()

	key := []byte("01234567890123456789012345678901")
	var store ports.KeyValueStore = middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{
		ActiveKey: key,
	})(raw)

	cache, err := session.New(session.Config{Store: store})
	if err != nil {
		panic(err)
	}
	if _, err := cache.Put(ctx, "phone", domain.NewEntry(domain.SessionDescriptor(`{"id":"s1"}`))); err != nil {
		panic(err)
	}

	// The backing store only ever sees ciphertext.
	data, _ := raw.Read(ctx, cache.Key("phone"))
	fmt.Println(json.Valid(data))

	entry, _ := cache.Get(ctx, "phone")
	fmt.Println(entry.Len())

	// Output:
	// false
	// 1
}

func Example_outage() {
	cache, _ := session.New(session.Config{Store: memory.NewStore()})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := cache.Get(ctx, "tablet")
	fmt.Println(errors.Is(err, domain.ErrStoreUnavailable))

	// Output:
	// true
}
