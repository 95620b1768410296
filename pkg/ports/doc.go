/*
Package ports defines the driven ports (interfaces) of the session cache.

These interfaces decouple the accessor from the storage technology, allowing it to run
against an in-process map, a Redis server or a directory of files without change.

# Key Interfaces

  - KeyValueStore: Minimal read/write contract of a backing cache store.

RunKeyValueStoreContract is a reusable test suite every adapter runs against itself.
*/
package ports
