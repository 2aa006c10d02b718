package descriptorpool

import (
	"fmt"
	"log/slog"

	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/protoflow/descriptorpool/errlist"
	"github.com/protoflow/descriptorpool/internal/handle"
	"github.com/protoflow/descriptorpool/internal/nametable"
	"github.com/protoflow/descriptorpool/internal/poolstore"
	"github.com/protoflow/descriptorpool/internal/resolve"
)

// Option configures a Builder. Options are applied in the order passed
// to NewBuilder.
type Option func(*Builder)

// WithLogger sets the logger the Builder uses to report build progress.
// The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) { b.logger = logger }
}

// Builder accumulates FileDescriptorSets and resolves them into a Pool.
// A Builder is not safe for concurrent use.
type Builder struct {
	store  *poolstore.Store
	names  *nametable.Table
	logger *slog.Logger

	errs    []*errlist.Error
	failed  bool
}

// NewBuilder returns an empty Builder.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		store:  poolstore.New(),
		names:  nametable.New(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AddFiles resolves every file in fds against the files already added to
// this Builder (in any prior AddFiles call), appending the result to the
// Builder's pool-in-progress. Files may reference types declared by
// files added in this call or any earlier one, in any order; forward and
// circular references across files are resolved normally.
//
// AddFiles returns the errors found while resolving this batch. A
// non-empty result does not stop the Builder from accepting further
// files, but Build will refuse to return a Pool if any call to AddFiles
// ever reported an error.
func (b *Builder) AddFiles(fds *descriptorpb.FileDescriptorSet) []*errlist.Error {
	firstFile := handle.File(len(b.store.Files))
	b.logger.Debug("resolving file batch", "count", len(fds.GetFile()), "first_file", firstFile)

	errs := resolve.Build(b.store, b.names, fds.GetFile(), firstFile)
	batch := errs.Errors()
	if len(batch) > 0 {
		b.failed = true
		b.errs = append(b.errs, batch...)
		b.logger.Warn("file batch resolved with errors", "count", len(batch))
	}
	return batch
}

// Build returns the resolved Pool. It fails if any file added to the
// Builder produced a resolution error; the returned error wraps an
// *errlist.List (reachable with errors.As) holding the full set of
// problems.
func (b *Builder) Build() (*Pool, error) {
	if b.failed {
		list := &errlist.List{}
		for _, e := range b.errs {
			list.Add(e)
		}
		return nil, fmt.Errorf("descriptor pool build failed: %w", list)
	}
	return &Pool{store: b.store, names: b.names}, nil
}
