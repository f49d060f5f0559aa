package mock

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/agenthub/hub/internal/model"
	"github.com/agenthub/hub/internal/repo"
	hubcontext "github.com/agenthub/hub/utils/context"
)

// Repo is an in-memory implementation of repo.Repo for unit tests. It
// mirrors the scoping behavior of the SQL repository: shared models live in
// one bucket, tenant models live in per-tenant buckets selected by the
// tenant in context, and addressing a tenant that has no row in the shared
// tenants bucket fails the same way the real repository does.
type Repo struct {
	mu sync.RWMutex

	// data[scope][table][pk] = stored copy
	data map[string]map[string]map[string]repo.Resource

	migrated map[string]bool
}

const sharedScope = "public"

// NewRepo creates an empty in-memory repository.
func NewRepo() *Repo {
	return &Repo{
		data:     map[string]map[string]map[string]repo.Resource{},
		migrated: map[string]bool{},
	}
}

func (m *Repo) scopeFor(ctx context.Context, resource repo.Resource) (string, error) {
	if resource.IsSharedModel() {
		return sharedScope, nil
	}

	tenantID, err := hubcontext.ExtractTenantID(ctx)
	if err != nil {
		return "", repo.ErrWithTenant
	}

	tenants := m.data[sharedScope][model.Tenant{}.TableName()]
	if _, ok := tenants[tenantID]; !ok {
		return "", repo.ErrTenantNotFound
	}

	return tenantID, nil
}

func (m *Repo) bucket(scope, table string) map[string]repo.Resource {
	if m.data[scope] == nil {
		m.data[scope] = map[string]map[string]repo.Resource{}
	}

	if m.data[scope][table] == nil {
		m.data[scope][table] = map[string]repo.Resource{}
	}

	return m.data[scope][table]
}

func (m *Repo) Create(ctx context.Context, resource repo.Resource) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	scope, err := m.scopeFor(ctx, resource)
	if err != nil {
		return err
	}

	bucket := m.bucket(scope, resource.TableName())

	pk := primaryKey(resource)
	if _, exists := bucket[pk]; exists {
		return repo.ErrUniqueConstraint
	}

	for _, existing := range bucket {
		if violatesUnique(resource, existing) {
			return repo.ErrUniqueConstraint
		}
	}

	// The real repository runs gorm hooks; the mock mirrors that so
	// timestamps behave the same.
	if hook, ok := resource.(interface{ BeforeCreate(*gorm.DB) error }); ok {
		_ = hook.BeforeCreate(nil)
	}

	bucket[pk] = clone(resource)

	return nil
}

func (m *Repo) First(ctx context.Context, resource repo.Resource, query repo.Query) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	scope, err := m.scopeFor(ctx, resource)
	if err != nil {
		return false, err
	}

	bucket := m.bucket(scope, resource.TableName())

	for _, stored := range bucket {
		if matches(stored, resource, query) {
			assign(resource, stored)
			return true, nil
		}
	}

	return false, repo.ErrNotFound
}

func (m *Repo) List(ctx context.Context, resource repo.Resource, result any, query repo.Query) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	scope, err := m.scopeFor(ctx, resource)
	if err != nil {
		return 0, err
	}

	bucket := m.bucket(scope, resource.TableName())

	matched := make([]repo.Resource, 0, len(bucket))

	for _, stored := range bucket {
		if matchesConds(stored, query) {
			matched = append(matched, stored)
		}
	}

	// Count reflects all matches; ordering and pagination only shape the
	// returned page, mirroring the SQL repository.
	total := len(matched)

	sortResources(matched, query.OrderFields)
	fill(result, paginate(matched, query.Offset, query.Limit))

	return total, nil
}

func sortResources(items []repo.Resource, orders []repo.OrderField) {
	if len(orders) == 0 {
		return
	}

	sort.SliceStable(items, func(i, j int) bool {
		for _, order := range orders {
			fi, okI := fieldByColumn(items[i], string(order.Field))
			fj, okJ := fieldByColumn(items[j], string(order.Field))

			if !okI || !okJ {
				continue
			}

			c := compareValues(fi, fj)
			if c == 0 {
				continue
			}

			if order.Direction == repo.Desc {
				return c > 0
			}

			return c < 0
		}

		return false
	})
}

func compareValues(a, b reflect.Value) int {
	if t, ok := a.Interface().(time.Time); ok {
		u := b.Interface().(time.Time)

		switch {
		case t.Before(u):
			return -1
		case t.After(u):
			return 1
		default:
			return 0
		}
	}

	switch a.Kind() {
	case reflect.String:
		return strings.Compare(a.String(), b.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		switch {
		case a.Int() < b.Int():
			return -1
		case a.Int() > b.Int():
			return 1
		}
	case reflect.Bool:
		switch {
		case !a.Bool() && b.Bool():
			return -1
		case a.Bool() && !b.Bool():
			return 1
		}
	}

	return 0
}

func paginate(items []repo.Resource, offset, limit int) []repo.Resource {
	if offset > len(items) {
		offset = len(items)
	}

	items = items[offset:]

	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}

	return items
}

func (m *Repo) Count(ctx context.Context, resource repo.Resource, query repo.Query) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	scope, err := m.scopeFor(ctx, resource)
	if err != nil {
		return 0, err
	}

	count := 0

	for _, stored := range m.bucket(scope, resource.TableName()) {
		if matchesConds(stored, query) {
			count++
		}
	}

	return count, nil
}

func (m *Repo) Patch(ctx context.Context, resource repo.Resource, query repo.Query) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	scope, err := m.scopeFor(ctx, resource)
	if err != nil {
		return false, err
	}

	bucket := m.bucket(scope, resource.TableName())

	pk := primaryKey(resource)

	stored, ok := bucket[pk]
	if !ok {
		return false, repo.ErrNotFound
	}

	if !matchesConds(stored, query) {
		return false, repo.ErrNotFound
	}

	merge(stored, resource, query.UpdateFields)

	if hook, ok := stored.(interface{ BeforeUpdate(*gorm.DB) error }); ok {
		_ = hook.BeforeUpdate(nil)
	}

	assign(resource, stored)

	return true, nil
}

func (m *Repo) Transaction(ctx context.Context, txFunc repo.TransactionFunc) error {
	return txFunc(ctx, m)
}

func (m *Repo) Migrate(_ context.Context, schemaName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.migrated[schemaName] = true

	return nil
}

// MigratedSchemas returns the schemas Migrate has been called with.
func (m *Repo) MigratedSchemas() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	schemas := make([]string, 0, len(m.migrated))
	for s := range m.migrated {
		schemas = append(schemas, s)
	}

	return schemas
}

// --- reflection helpers ---

func primaryKey(resource repo.Resource) string {
	v := reflect.Indirect(reflect.ValueOf(resource))

	f := v.FieldByName("ID")
	if !f.IsValid() {
		return ""
	}

	return fmt.Sprintf("%v", f.Interface())
}

// fieldByColumn maps a snake_case column name onto the struct field.
func fieldByColumn(resource repo.Resource, column string) (reflect.Value, bool) {
	name := strings.ReplaceAll(column, "_", "")

	v := reflect.Indirect(reflect.ValueOf(resource))
	t := v.Type()

	for i := range t.NumField() {
		field := t.Field(i)

		if field.Anonymous {
			nested, ok := fieldByColumnValue(v.Field(i), name)
			if ok {
				return nested, true
			}

			continue
		}

		if strings.EqualFold(field.Name, name) {
			return v.Field(i), true
		}
	}

	return reflect.Value{}, false
}

func fieldByColumnValue(v reflect.Value, name string) (reflect.Value, bool) {
	v = reflect.Indirect(v)
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}

	t := v.Type()
	for i := range t.NumField() {
		field := t.Field(i)

		if field.Anonymous {
			nested, ok := fieldByColumnValue(v.Field(i), name)
			if ok {
				return nested, true
			}

			continue
		}

		if strings.EqualFold(field.Name, name) {
			return v.Field(i), true
		}
	}

	return reflect.Value{}, false
}

func matchesConds(stored repo.Resource, query repo.Query) bool {
	for _, group := range query.CompositeKeyGroup {
		if !matchesCompositeKey(stored, group.CompositeKey) {
			return false
		}
	}

	return true
}

func matchesCompositeKey(stored repo.Resource, ck repo.CompositeKey) bool {
	if len(ck.Conds) == 0 {
		return true
	}

	for _, cond := range ck.Conds {
		ok := matchesCond(stored, cond)

		if ck.IsStrict && !ok {
			return false
		}

		if !ck.IsStrict && ok {
			return true
		}
	}

	return ck.IsStrict
}

func matchesCond(stored repo.Resource, cond repo.Condition) bool {
	f, ok := fieldByColumn(stored, cond.Field)
	if !ok {
		return false
	}

	want := cond.Value.Key.Value

	switch cond.Value.Key.Operation {
	case repo.GreaterThan:
		return compareValues(f, reflect.ValueOf(want)) > 0
	case repo.LessThan:
		return compareValues(f, reflect.ValueOf(want)) < 0
	}

	have := fmt.Sprintf("%v", f.Interface())

	// IN semantics for slice values
	wv := reflect.ValueOf(want)
	if wv.Kind() == reflect.Slice {
		for i := range wv.Len() {
			if fmt.Sprintf("%v", wv.Index(i).Interface()) == have {
				return cond.Value.Key.Operation == repo.Equal
			}
		}

		return cond.Value.Key.Operation == repo.NotEqual
	}

	equal := fmt.Sprintf("%v", want) == have

	switch cond.Value.Key.Operation {
	case repo.NotEqual:
		return !equal
	default:
		return equal
	}
}

// matches checks query conditions when present, falling back to the
// primary key of the given resource the way gorm's First does.
func matches(stored, resource repo.Resource, query repo.Query) bool {
	if len(query.CompositeKeyGroup) > 0 {
		return matchesConds(stored, query)
	}

	pk := primaryKey(resource)
	if pk == "" || isZeroKey(pk) {
		return true
	}

	return primaryKey(stored) == pk
}

func isZeroKey(pk string) bool {
	return pk == "" || pk == "00000000-0000-0000-0000-000000000000"
}

func clone(resource repo.Resource) repo.Resource {
	v := reflect.Indirect(reflect.ValueOf(resource))

	c := reflect.New(v.Type())
	c.Elem().Set(v)

	return c.Interface().(repo.Resource)
}

func assign(dst, src repo.Resource) {
	dv := reflect.Indirect(reflect.ValueOf(dst))
	sv := reflect.Indirect(reflect.ValueOf(src))

	if dv.CanSet() && dv.Type() == sv.Type() {
		dv.Set(sv)
	}
}

// merge applies the update semantics of Patch: the listed fields, or
// non-zero fields only.
func merge(stored, patch repo.Resource, update repo.Update) {
	sv := reflect.Indirect(reflect.ValueOf(stored))
	pv := reflect.Indirect(reflect.ValueOf(patch))

	if len(update.Fields) > 0 {
		for _, column := range update.Fields {
			sf, okS := fieldByColumn(stored, column)
			pf, okP := fieldByColumn(patch, column)

			if okS && okP && sf.CanSet() {
				sf.Set(pf)
			}
		}

		return
	}

	for i := range pv.NumField() {
		field := pv.Type().Field(i)
		if field.Anonymous || field.Name == "ID" {
			continue
		}

		if !pv.Field(i).IsZero() && sv.Field(i).CanSet() {
			sv.Field(i).Set(pv.Field(i))
		}
	}
}

// violatesUnique models the unique constraints the real schema enforces:
// tenant slug globally, user email per tenant partition.
func violatesUnique(candidate, existing repo.Resource) bool {
	switch c := candidate.(type) {
	case *model.Tenant:
		e, ok := existing.(*model.Tenant)
		return ok && (e.Slug == c.Slug || e.ID == c.ID)
	case *model.User:
		e, ok := existing.(*model.User)
		return ok && e.Email == c.Email
	}

	return false
}

func fill(result any, matched []repo.Resource) {
	rv := reflect.ValueOf(result)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Slice {
		return
	}

	slice := rv.Elem()
	elemType := slice.Type().Elem()

	out := reflect.MakeSlice(slice.Type(), 0, len(matched))

	for _, item := range matched {
		iv := reflect.ValueOf(clone(item))

		switch {
		case iv.Type() == elemType:
			out = reflect.Append(out, iv)
		case iv.Type().Elem() == elemType:
			out = reflect.Append(out, iv.Elem())
		}
	}

	slice.Set(out)
}
