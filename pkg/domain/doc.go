/*
Package domain contains the core model of the device session cache.

It is kept pure and free of I/O so that the accessor, the store adapters and the
transport layers can share the same vocabulary.

# Key Entities

  - DeviceID: Opaque identifier of a connected device. Used verbatim in cache keys.
  - SessionDescriptor: Opaque record of one active transport session. Its structure is
    owned by the connectivity subsystem and never inspected here.
  - Entry: The set of sessions currently believed active for one device. An Entry with
    zero sessions is valid.
*/
package domain
