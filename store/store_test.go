package store

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// fakeRedis implements redisClient over a map.
type fakeRedis struct {
	data map[string]string
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	f.data[key] = string(value.([]byte))
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Close() error { return nil }

// fakeDocuments implements documents over a map.
type fakeDocuments struct {
	data map[string][]byte
}

func (f *fakeDocuments) FindOne(_ context.Context, filter interface{}, _ ...*options.FindOneOptions) *mongo.SingleResult {
	key := filter.(bson.M)["_id"].(string)
	v, ok := f.data[key]
	if !ok {
		return mongo.NewSingleResultFromDocument(bson.D{}, mongo.ErrNoDocuments, nil)
	}
	return mongo.NewSingleResultFromDocument(blob{Key: key, Value: v}, nil, nil)
}

func (f *fakeDocuments) UpdateOne(_ context.Context, filter interface{}, update interface{}, _ ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	key := filter.(bson.M)["_id"].(string)
	set := update.(bson.M)["$set"].(bson.M)
	f.data[key] = set["value"].([]byte)
	return &mongo.UpdateResult{MatchedCount: 1}, nil
}

func backends(t *testing.T) map[string]Store {
	t.Helper()
	dir, err := OpenDir(filepath.Join(t.TempDir(), "book"), quietLogger())
	if err != nil {
		t.Fatalf("OpenDir: %v", err)
	}
	bdg, err := OpenBadger("", quietLogger())
	if err != nil {
		t.Fatalf("OpenBadger: %v", err)
	}
	return map[string]Store{
		"memory": NewMemory(),
		"dir":    dir,
		"badger": bdg,
		"redis":  &Redis{client: &fakeRedis{data: map[string]string{}}, log: quietLogger()},
		"mongo":  &Mongo{docs: &fakeDocuments{data: map[string][]byte{}}},
	}
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			defer s.Close()

			if _, err := s.Get(ctx, "accounts"); !errors.Is(err, ErrNotFound) {
				t.Fatalf("Get(missing) error = %v, want ErrNotFound", err)
			}

			want := []byte("{\"name\":\"Cash\",\"type\":\"Asset\"}\n")
			if err := s.Put(ctx, "accounts", want); err != nil {
				t.Fatalf("Put: %v", err)
			}
			got, err := s.Get(ctx, "accounts")
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if !bytes.Equal(got, want) {
				t.Errorf("Get = %q, want %q", got, want)
			}

			// overwrite
			if err := s.Put(ctx, "accounts", []byte("")); err != nil {
				t.Fatalf("Put: %v", err)
			}
			got, err = s.Get(ctx, "accounts")
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if len(got) != 0 {
				t.Errorf("Get after overwrite = %q, want empty", got)
			}
		})
	}
}

func TestDir_Files(t *testing.T) {
	root := filepath.Join(t.TempDir(), "book")
	s, err := OpenDir(root, quietLogger())
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Put(context.Background(), "cash_on_hand", []byte("150.00")); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(root, "cash_on_hand"))
	if err != nil {
		t.Fatalf("expected a file per key: %v", err)
	}
	if string(data) != "150.00" {
		t.Errorf("file content = %q, want 150.00", data)
	}
	entries, _ := os.ReadDir(root)
	if len(entries) != 1 {
		t.Errorf("store directory has %d entries, want 1 (no leftover temp file)", len(entries))
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	tmp := t.TempDir()
	tests := []struct {
		location string
		want     string
	}{
		{"mem:", "*store.Memory"},
		{filepath.Join(tmp, "a"), "*store.Dir"},
		{"file://" + filepath.Join(tmp, "b"), "*store.Dir"},
		{"badger://", "*store.Badger"},
	}
	for _, tc := range tests {
		t.Run(tc.location, func(t *testing.T) {
			s, err := Open(ctx, tc.location, quietLogger())
			if err != nil {
				t.Fatalf("Open(%q): %v", tc.location, err)
			}
			defer s.Close()
			if got := typeName(s); got != tc.want {
				t.Errorf("Open(%q) = %s, want %s", tc.location, got, tc.want)
			}
		})
	}

	if _, err := Open(ctx, "ftp://example.com", quietLogger()); err == nil {
		t.Error("Open(ftp://) succeeded, want error")
	}
}

func typeName(s Store) string {
	switch s.(type) {
	case *Memory:
		return "*store.Memory"
	case *Dir:
		return "*store.Dir"
	case *Badger:
		return "*store.Badger"
	case *Redis:
		return "*store.Redis"
	case *Mongo:
		return "*store.Mongo"
	default:
		return "unknown"
	}
}
