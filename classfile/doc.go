// Package classfile parses the .class binary container far enough to
// enumerate a class's members: constant pool, access flags, class names,
// and field/method entries with their names and signature descriptors.
// Method bodies and attribute internals are kept as raw bytes; this is a
// member-listing parser for the binding tools, not a verifier.
package classfile
