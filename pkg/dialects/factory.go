package dialects

import (
	"fmt"
	"sync"

	"github.com/jas88/FAnsiSql-sub000/pkg/bulk"
)

// DialectConstructor - функция-конструктор диалекта
type DialectConstructor func() bulk.Dialect

// Factory - фабрика диалектов
// Управляет регистрацией и созданием диалектов различных СУБД
type Factory struct {
	registry map[string]DialectConstructor
	mu       sync.RWMutex
}

// NewFactory создает новую фабрику диалектов
func NewFactory() *Factory {
	return &Factory{
		registry: make(map[string]DialectConstructor),
	}
}

// Register регистрирует конструктор диалекта для типа СУБД
// dbType должен быть одним из: "mssql", "mysql", "postgres", "oracle", "sqlite"
func (f *Factory) Register(dbType string, constructor DialectConstructor) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registry[dbType] = constructor
}

// IsRegistered проверяет, зарегистрирован ли диалект для данного типа СУБД
func (f *Factory) IsRegistered(dbType string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.registry[dbType]
	return ok
}

// GetRegisteredTypes возвращает список всех зарегистрированных типов СУБД
func (f *Factory) GetRegisteredTypes() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	types := make([]string, 0, len(f.registry))
	for dbType := range f.registry {
		types = append(types, dbType)
	}
	return types
}

// Create создает диалект по типу СУБД
func (f *Factory) Create(dbType string) (bulk.Dialect, error) {
	f.mu.RLock()
	constructor, ok := f.registry[dbType]
	f.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown database type: %s (available types: %v)",
			dbType, f.GetRegisteredTypes())
	}

	return constructor(), nil
}

// ========== Global Factory ==========

var globalFactory = NewFactory()

// Register регистрирует диалект в глобальной фабрике
// Эта функция обычно вызывается в init() функциях пакетов диалектов
//
// Пример (в pkg/dialects/sqlite/dialect.go):
//
//	func init() {
//	    dialects.Register("sqlite", func() bulk.Dialect {
//	        return &Dialect{}
//	    })
//	}
func Register(dbType string, constructor DialectConstructor) {
	globalFactory.Register(dbType, constructor)
}

// IsRegistered проверяет регистрацию в глобальной фабрике
func IsRegistered(dbType string) bool {
	return globalFactory.IsRegistered(dbType)
}

// GetRegisteredTypes возвращает типы из глобальной фабрики
func GetRegisteredTypes() []string {
	return globalFactory.GetRegisteredTypes()
}

// New создает диалект через глобальную фабрику
// Это основной способ получения диалекта в приложении
//
// Пример:
//
//	dialect, err := dialects.New("postgres")
func New(dbType string) (bulk.Dialect, error) {
	return globalFactory.Create(dbType)
}

// MustNew создает диалект или паникует при ошибке
// Использовать только в init() или main() где паника допустима
func MustNew(dbType string) bulk.Dialect {
	d, err := New(dbType)
	if err != nil {
		panic(fmt.Sprintf("failed to create dialect: %v", err))
	}
	return d
}
