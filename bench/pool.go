package bench

import (
	"context"
	"errors"

	pool "github.com/jolestar/go-commons-pool/v2"
)

// keyBuffer is scratch space for one generated key. The dictionary copies
// key bytes on insert, so a buffer is refilled for every key.
type keyBuffer struct {
	b []byte
}

type keyBufferFactory struct {
	size int
}

func (f *keyBufferFactory) MakeObject(_ context.Context) (*pool.PooledObject, error) {
	return pool.NewPooledObject(&keyBuffer{b: make([]byte, f.size)}), nil
}

func (f *keyBufferFactory) DestroyObject(_ context.Context, _ *pool.PooledObject) error {
	return nil
}

func (f *keyBufferFactory) ValidateObject(_ context.Context, obj *pool.PooledObject) bool {
	buf, ok := obj.Object.(*keyBuffer)
	return ok && len(buf.b) == f.size
}

func (f *keyBufferFactory) ActivateObject(_ context.Context, _ *pool.PooledObject) error {
	return nil
}

func (f *keyBufferFactory) PassivateObject(_ context.Context, obj *pool.PooledObject) error {
	buf, ok := obj.Object.(*keyBuffer)
	if !ok {
		return errors.New("type mismatch")
	}
	for i := range buf.b {
		buf.b[i] = 0
	}
	return nil
}

type keyPool struct {
	p *pool.ObjectPool
}

func newKeyPool(ctx context.Context, keyLength int) *keyPool {
	return &keyPool{
		p: pool.NewObjectPoolWithDefaultConfig(ctx, &keyBufferFactory{size: keyLength}),
	}
}

func (kp *keyPool) borrow(ctx context.Context) (*keyBuffer, error) {
	obj, err := kp.p.BorrowObject(ctx)
	if err != nil {
		return nil, err
	}
	buf, ok := obj.(*keyBuffer)
	if !ok {
		return nil, errors.New("type mismatch")
	}
	return buf, nil
}

func (kp *keyPool) giveBack(ctx context.Context, buf *keyBuffer) error {
	return kp.p.ReturnObject(ctx, buf)
}

func (kp *keyPool) close(ctx context.Context) {
	kp.p.Close(ctx)
}
