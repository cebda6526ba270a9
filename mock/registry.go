package mock

import "github.com/galscrape/galscrape"

var _ galscrape.AdapterRegistry = (*AdapterRegistry)(nil)

// AdapterRegistry is a mock implementation of galscrape.AdapterRegistry.
type AdapterRegistry struct {
	GetFn      func(source galscrape.Source) (galscrape.SourceAdapter, bool)
	RegisterFn func(adapter galscrape.SourceAdapter)
	ListFn     func() []galscrape.Source
}

func (r *AdapterRegistry) Get(source galscrape.Source) (galscrape.SourceAdapter, bool) {
	return r.GetFn(source)
}

func (r *AdapterRegistry) Register(adapter galscrape.SourceAdapter) {
	r.RegisterFn(adapter)
}

func (r *AdapterRegistry) List() []galscrape.Source {
	if r.ListFn == nil {
		return nil
	}
	return r.ListFn()
}
