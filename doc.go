// Package jui provides compile-time-typed bindings over the untyped
// embedding interface of a managed object runtime.
//
// The embedding interface exposes every method as (env, receiver,
// method-id, []generic-value) -> generic-value, leaving the caller to
// match value kinds, spell out textual signature descriptors, and manage
// object and string lifetimes by hand. This module derives all of that
// from Go function types instead.
//
// # Architecture Overview
//
//	jui/                 Root package: Env interface, Ref handles, the
//	                     JValue boundary union and per-kind call tags
//	├── descriptor/      Type and method descriptors, wire-grammar
//	│                    serialization and parsing
//	├── reflector/       Class handles, typed callables, type mapping
//	│                    and the managed String adapter
//	├── errors/          Structured error types
//	├── classfile/       Minimal .class binary parser
//	├── cmd/inspect/     Class member browser (CLI and interactive TUI)
//	└── cmd/bindgen/     Typed-binding generator for .class files
//
// # Quick Start
//
// Resolve a class and call a method through a typed callable:
//
//	r := reflector.New(env)
//	cls, err := r.GetClass("java/lang/String")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	length, err := reflector.GetMethod[func(reflector.Object) (int32, error)](cls, "length")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	n, err := length.Fn()(obj) // signature ()I was derived and resolved
//
// The func type supplied at resolution time fixes the member's signature
// permanently: the descriptor text is derived from it, the member id is
// resolved once, and the returned callable cannot be invoked with any
// other shape.
//
// # Thread Model
//
// An Env is bound to a single native thread and every operation is a
// blocking synchronous call. Nothing in this module synchronizes access;
// multi-threaded use requires one Env per thread.
package jui
