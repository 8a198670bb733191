package store

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sicko7947/statusreset"
)

// MemoryService implements statusreset.TableService using in-memory storage (for testing)
type MemoryService struct {
	tables map[string]*memoryTable
	mu     sync.RWMutex
}

type memoryTable struct {
	keyAttribute string
	order        []string                    // keys in insertion order
	items        map[string]statusreset.Item // key -> item
	pageSize     int
	failures     map[string]error // key -> injected update error
	scanCalls    int
	updateCalls  int
}

// NewMemoryService creates a new in-memory table service
func NewMemoryService() *MemoryService {
	return &MemoryService{
		tables: make(map[string]*memoryTable),
	}
}

// CreateTable registers an empty table keyed by keyAttribute
func (s *MemoryService) CreateTable(name, keyAttribute string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tables[name] = &memoryTable{
		keyAttribute: keyAttribute,
		items:        make(map[string]statusreset.Item),
		failures:     make(map[string]error),
	}
}

// SetPageSize limits how many items a single scan returns. Zero means no limit.
func (s *MemoryService) SetPageSize(name string, size int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tbl, err := s.table(name)
	if err != nil {
		return err
	}
	tbl.pageSize = size
	return nil
}

// Put stores an item, replacing any item with the same key
func (s *MemoryService) Put(name string, item statusreset.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tbl, err := s.table(name)
	if err != nil {
		return err
	}

	_, key, ok := statusreset.KeyOf(item, tbl.keyAttribute)
	if !ok {
		return fmt.Errorf("item has no %s attribute", tbl.keyAttribute)
	}

	tbl.put(key, maps.Clone(item))
	return nil
}

// PutValues marshals v with attributevalue and stores the result
func (s *MemoryService) PutValues(name string, v interface{}) error {
	item, err := attributevalue.MarshalMap(v)
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}
	return s.Put(name, item)
}

// Get returns a copy of the item with the given printable key
func (s *MemoryService) Get(name, key string) (statusreset.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tbl, err := s.table(name)
	if err != nil {
		return nil, false
	}

	item, ok := tbl.items[key]
	if !ok {
		return nil, false
	}
	return maps.Clone(item), true
}

// Items returns copies of all items in insertion order
func (s *MemoryService) Items(name string) []statusreset.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tbl, err := s.table(name)
	if err != nil {
		return nil
	}

	items := make([]statusreset.Item, 0, len(tbl.order))
	for _, key := range tbl.order {
		items = append(items, maps.Clone(tbl.items[key]))
	}
	return items
}

// FailUpdate makes every update of the item with the given key return err
func (s *MemoryService) FailUpdate(name, key string, err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tbl, terr := s.table(name)
	if terr != nil {
		return terr
	}
	tbl.failures[key] = err
	return nil
}

// ScanCalls returns how many scan requests the table has served
func (s *MemoryService) ScanCalls(name string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if tbl, err := s.table(name); err == nil {
		return tbl.scanCalls
	}
	return 0
}

// UpdateCalls returns how many update requests the table has received, failed ones included
func (s *MemoryService) UpdateCalls(name string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if tbl, err := s.table(name); err == nil {
		return tbl.updateCalls
	}
	return 0
}

// Table returns a handle to a table created with CreateTable
func (s *MemoryService) Table(ctx context.Context, name string) (statusreset.TableHandle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, err := s.table(name); err != nil {
		return nil, fmt.Errorf("failed to describe table %s: %w", name, err)
	}

	return &MemoryTable{service: s, tableName: name}, nil
}

// table must be called with s.mu held
func (s *MemoryService) table(name string) (*memoryTable, error) {
	tbl, ok := s.tables[name]
	if !ok {
		return nil, &types.ResourceNotFoundException{
			Message: aws.String(fmt.Sprintf("Requested resource not found: Table: %s not found", name)),
		}
	}
	return tbl, nil
}

func (t *memoryTable) put(key string, item statusreset.Item) {
	if _, exists := t.items[key]; !exists {
		t.order = append(t.order, key)
	}
	t.items[key] = item
}

// MemoryTable implements statusreset.TableHandle over a MemoryService table
type MemoryTable struct {
	service   *MemoryService
	tableName string
}

func (t *MemoryTable) Name() string {
	return t.tableName
}

// Scan returns the first page of items in insertion order
func (t *MemoryTable) Scan(ctx context.Context) (*statusreset.ScanPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t.service.mu.Lock()
	defer t.service.mu.Unlock()

	tbl, err := t.service.table(t.tableName)
	if err != nil {
		return nil, fmt.Errorf("failed to scan table %s: %w", t.tableName, err)
	}
	tbl.scanCalls++

	keys := tbl.order
	page := &statusreset.ScanPage{}
	if tbl.pageSize > 0 && len(keys) > tbl.pageSize {
		keys = keys[:tbl.pageSize]
		last, _, _ := statusreset.KeyOf(tbl.items[keys[len(keys)-1]], tbl.keyAttribute)
		page.LastEvaluatedKey = last
	}

	page.Items = make([]statusreset.Item, 0, len(keys))
	for _, key := range keys {
		page.Items = append(page.Items, maps.Clone(tbl.items[key]))
	}
	page.Count = int32(len(page.Items))

	return page, nil
}

// UpdateItem sets one attribute on the keyed item, creating the item if it
// does not exist as DynamoDB does
func (t *MemoryTable) UpdateItem(ctx context.Context, req statusreset.UpdateRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.service.mu.Lock()
	defer t.service.mu.Unlock()

	tbl, err := t.service.table(t.tableName)
	if err != nil {
		return fmt.Errorf("failed to update item in %s: %w", t.tableName, err)
	}
	tbl.updateCalls++

	_, key, ok := statusreset.KeyOf(req.Key, tbl.keyAttribute)
	if !ok {
		return fmt.Errorf("update on %s has no %s key", t.tableName, tbl.keyAttribute)
	}

	if ferr, failing := tbl.failures[key]; failing {
		return fmt.Errorf("failed to update item in %s: %w", t.tableName, ferr)
	}

	av, err := attributevalue.Marshal(req.Value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for %s: %w", req.Attribute, err)
	}

	// Replace rather than mutate so earlier scan snapshots stay intact
	item := maps.Clone(tbl.items[key])
	if item == nil {
		item = maps.Clone(req.Key)
	}
	item[req.Attribute] = av
	tbl.put(key, item)

	return nil
}
