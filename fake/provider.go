// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package fake

import "github.com/momentics/disposepool/api"

// FakeBytesProvider is a trivial stub provider for testing consumers.
// It never pools: every acquisition is a fresh allocation and disposals
// are dropped.
type FakeBytesProvider struct{}

var _ api.BytesProvider = (*FakeBytesProvider)(nil)

func (f *FakeBytesProvider) AcquireBytes(capacity int, _ bool) ([]byte, error) {
	if capacity < 1 {
		return nil, api.ErrInvalidArgument
	}
	return make([]byte, capacity), nil
}

func (f *FakeBytesProvider) DisposeBytes(_ []byte)    {}
func (f *FakeBytesProvider) Sweep() int               { return 0 }
func (f *FakeBytesProvider) Stats() api.ProviderStats { return api.ProviderStats{} }
func (f *FakeBytesProvider) Close() error             { return nil }
