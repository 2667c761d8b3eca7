package seeder_test

import (
	"context"
	"errors"
	"strings"
	"sync"
)

var errFakeWrite = errors.New("fake store: write failed")

// fakeStore 仅用于单元测试（内存 set / hash / list）
type fakeStore struct {
	mu     sync.Mutex
	sets   map[string]map[string]bool
	hashes map[string]map[string]string
	lists  map[string][]string
	ops    []string

	clears    int
	failOnKey string // 非空时，写入以此为前缀的键返回错误
}

func newFakeStore() *fakeStore {
	f := &fakeStore{}
	f.reset()
	return f
}

func (f *fakeStore) reset() {
	f.sets = make(map[string]map[string]bool)
	f.hashes = make(map[string]map[string]string)
	f.lists = make(map[string][]string)
}

func (f *fakeStore) Clear(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clears++
	f.ops = append(f.ops, "CLEAR")
	f.reset()
	return nil
}

func (f *fakeStore) AddToSet(ctx context.Context, key, member string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.shouldFail(key) {
		return errFakeWrite
	}
	f.ops = append(f.ops, "SADD "+key)
	if f.sets[key] == nil {
		f.sets[key] = make(map[string]bool)
	}
	f.sets[key][member] = true
	return nil
}

func (f *fakeStore) WriteHash(ctx context.Context, key string, fields map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.shouldFail(key) {
		return errFakeWrite
	}
	f.ops = append(f.ops, "HSET "+key)
	h := f.hashes[key]
	if h == nil {
		h = make(map[string]string)
		f.hashes[key] = h
	}
	for k, v := range fields {
		h[k] = v
	}
	return nil
}

func (f *fakeStore) AppendToList(ctx context.Context, key, member string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.shouldFail(key) {
		return errFakeWrite
	}
	f.ops = append(f.ops, "RPUSH "+key)
	f.lists[key] = append(f.lists[key], member)
	return nil
}

func (f *fakeStore) shouldFail(key string) bool {
	return f.failOnKey != "" && strings.HasPrefix(key, f.failOnKey)
}

func (f *fakeStore) members(key string) []string {
	var out []string
	for m := range f.sets[key] {
		out = append(out, m)
	}
	return out
}

// hashCount 返回指定前缀的 hash 键数量
func (f *fakeStore) hashCount(prefix string) int {
	n := 0
	for k := range f.hashes {
		if strings.HasPrefix(k, prefix) {
			n++
		}
	}
	return n
}
