// Package symboltable maps source identifiers to slot indices within a
// lexical scope. The core only ever has one scope (global), grounded on
// the teacher's flat name->slot mapping style (see compiler.Scope in the
// original compiler.go, which layers function/block scopes on top of the
// same idea); SPEC_FULL.md's core keeps only the global layer.
package symboltable

// Scope tags where a Symbol lives. GlobalScope is the only scope the core
// language has; the type exists so a later extension (closures, function
// locals) can add more without changing Symbol's shape.
type Scope string

const GlobalScope Scope = "GLOBAL"

// Symbol is a resolved identifier: the scope it lives in and its slot
// index within that scope's storage (the VM's globals array, indexed by
// this Index as a uint16 operand).
type Symbol struct {
	Name  string
	Scope Scope
	Index int
}

// SymbolTable defines and resolves identifiers for one lexical scope. A
// single instance persists across REPL lines, per spec.md §3/§5.
type SymbolTable struct {
	store          map[string]Symbol
	numDefinitions int
}

// New creates an empty global symbol table.
func New() *SymbolTable {
	return &SymbolTable{store: make(map[string]Symbol)}
}

// Define allocates the next slot for name (0, 1, 2, ...) and stores it.
// Redefining an existing name overwrites its entry with a fresh slot,
// matching spec.md §4.3 ("redefinition overwrites").
func (s *SymbolTable) Define(name string) Symbol {
	symbol := Symbol{Name: name, Scope: GlobalScope, Index: s.numDefinitions}
	s.store[name] = symbol
	s.numDefinitions++
	return symbol
}

// Resolve looks up a previously defined name.
func (s *SymbolTable) Resolve(name string) (Symbol, bool) {
	symbol, ok := s.store[name]
	return symbol, ok
}

// NumDefinitions reports how many distinct slots have ever been handed
// out, used by the VM/REPL host to size or reuse the globals frame.
func (s *SymbolTable) NumDefinitions() int {
	return s.numDefinitions
}
