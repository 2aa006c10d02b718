package descriptorpool

import (
	"github.com/protoflow/descriptorpool/internal/handle"
	"github.com/protoflow/descriptorpool/internal/poolstore"
)

// ServiceDescriptor is a resolved protobuf service declaration.
type ServiceDescriptor struct {
	pool *Pool
	h    handle.Service
}

func (s ServiceDescriptor) raw() *poolstore.Service { return &s.pool.store.Services[s.h] }

// Name returns the service's unqualified name.
func (s ServiceDescriptor) Name() string { return s.raw().ShortName }

// FullName returns the service's fully qualified name.
func (s ServiceDescriptor) FullName() string { return s.raw().FullName }

// ParentFile returns the file this service is declared in.
func (s ServiceDescriptor) ParentFile() FileDescriptor {
	return FileDescriptor{pool: s.pool, h: s.raw().File}
}

// Methods returns the service's RPC methods in declaration order.
func (s ServiceDescriptor) Methods() []MethodDescriptor {
	ms := s.raw().Methods
	out := make([]MethodDescriptor, len(ms))
	for i := range ms {
		out[i] = MethodDescriptor{pool: s.pool, owner: s.h, idx: i}
	}
	return out
}

// GetMethodByName returns the method with the given unqualified name, if
// any.
func (s ServiceDescriptor) GetMethodByName(name string) (MethodDescriptor, bool) {
	for i, m := range s.raw().Methods {
		if m.ShortName == name {
			return MethodDescriptor{pool: s.pool, owner: s.h, idx: i}, true
		}
	}
	return MethodDescriptor{}, false
}

// MethodDescriptor is a single RPC method of a ServiceDescriptor.
type MethodDescriptor struct {
	pool  *Pool
	owner handle.Service
	idx   int
}

func (m MethodDescriptor) raw() *poolstore.Method {
	return &m.pool.store.Services[m.owner].Methods[m.idx]
}

// Name returns the method's unqualified name.
func (m MethodDescriptor) Name() string { return m.raw().ShortName }

// FullName returns the method's fully qualified name.
func (m MethodDescriptor) FullName() string { return m.raw().FullName }

// ContainingService returns the service this method is declared in.
func (m MethodDescriptor) ContainingService() ServiceDescriptor {
	return ServiceDescriptor{pool: m.pool, h: m.owner}
}

// Input returns the method's resolved request message type.
func (m MethodDescriptor) Input() MessageDescriptor {
	return MessageDescriptor{pool: m.pool, h: m.raw().Input}
}

// Output returns the method's resolved response message type.
func (m MethodDescriptor) Output() MessageDescriptor {
	return MessageDescriptor{pool: m.pool, h: m.raw().Output}
}
