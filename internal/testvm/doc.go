// Package testvm is an in-memory managed object runtime implementing
// jui.Env, used by the module's tests and tools. Classes carry
// per-signature method tables backed by Go functions; member resolution
// matches name plus signature text exactly, the way the real embedding
// interface does. Misuse that would be undefined behavior at the real
// boundary (double reference release, unbalanced string buffer release)
// panics so tests surface it.
//
// java/lang/Object, java/lang/String and java/lang/Integer are
// preloaded; register further classes with RegisterClass and AddMethod.
package testvm
