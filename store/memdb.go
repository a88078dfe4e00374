package store

import (
	"fmt"
	"sort"

	memdb "github.com/hashicorp/go-memdb"
	"github.com/on-the-ground/memo_ive_go/shared/helper"
)

const (
	memdbTable    = "entries"
	memdbIDIndex  = "id"
	memdbSeqIndex = "seq"
)

var (
	_ Table[string, int] = (*MemDBTable[string, int])(nil)
	_ Resetter           = (*MemDBTable[string, int])(nil)
)

// row is the object stored in memdb. ID is the encoded table key.
type row[T comparable, V any] struct {
	ID    string
	Seq   uint64
	Key   T
	Value V
}

// MemDBTable keeps entries in a go-memdb database.
//
// Keys are indexed by helper.EncodeKey: the "%T:%#v" rendering, or the address
// for pointer and channel keys. Equality therefore matches the map backend for
// strings, numbers, bools, pointers and structs or arrays of those.
type MemDBTable[T comparable, V any] struct {
	db   *memdb.MemDB
	next uint64
	n    int
}

func memdbSchema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			memdbTable: {
				Name: memdbTable,
				Indexes: map[string]*memdb.IndexSchema{
					memdbIDIndex: {
						Name:    memdbIDIndex,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
					memdbSeqIndex: {
						Name:    memdbSeqIndex,
						Unique:  true,
						Indexer: &memdb.UintFieldIndex{Field: "Seq"},
					},
				},
			},
		},
	}
}

func NewMemDBTable[T comparable, V any]() (*MemDBTable[T, V], error) {
	db, err := memdb.NewMemDB(memdbSchema())
	if err != nil {
		return nil, fmt.Errorf("create memdb table: %w", err)
	}
	return &MemDBTable[T, V]{db: db}, nil
}

func encodeKey[T comparable](key T) string {
	return helper.EncodeKey(key)
}

func (m *MemDBTable[T, V]) Load(key T) (value V, ok bool, err error) {
	txn := m.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(memdbTable, memdbIDIndex, encodeKey(key))
	if err != nil || raw == nil {
		return value, false, err
	}
	r, err := helper.GetTypedValueOf[*row[T, V]](func() (any, error) { return raw, nil })
	if err != nil {
		return value, false, err
	}
	return r.Value, true, nil
}

func (m *MemDBTable[T, V]) InsertIfAbsent(key T, value V) (inserted bool, err error) {
	txn := m.db.Txn(true)
	defer txn.Abort()

	id := encodeKey(key)
	old, err := txn.First(memdbTable, memdbIDIndex, id)
	if err != nil {
		return false, err
	} else if old != nil {
		return false, nil
	}

	if err := txn.Insert(memdbTable, &row[T, V]{ID: id, Seq: m.next, Key: key, Value: value}); err != nil {
		return false, err
	}
	txn.Commit()
	m.next++
	m.n++
	return true, nil
}

func (m *MemDBTable[T, V]) Len() int {
	return m.n
}

func (m *MemDBTable[T, V]) Keys() []T {
	txn := m.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(memdbTable, memdbIDIndex)
	if err != nil {
		return nil
	}
	var rows []*row[T, V]
	for obj := it.Next(); obj != nil; obj = it.Next() {
		if r, ok := obj.(*row[T, V]); ok {
			rows = append(rows, r)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Seq < rows[j].Seq })

	keys := make([]T, len(rows))
	for i, r := range rows {
		keys[i] = r.Key
	}
	return keys
}

func (m *MemDBTable[T, V]) Reset() error {
	txn := m.db.Txn(true)
	defer txn.Abort()

	if _, err := txn.DeleteAll(memdbTable, memdbIDIndex); err != nil {
		return fmt.Errorf("reset memdb table: %w", err)
	}
	txn.Commit()
	m.n = 0
	return nil
}
