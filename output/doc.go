// SPDX-License-Identifier: EPL-2.0

// Package output defines the playback device contract used by audplay and
// provides the default implementation on top of github.com/ebitengine/oto/v3.
//
// A Device mixes any number of Sinks. Each Sink is one voice: sources
// appended to it are converted to the device format with audio.Conform,
// queued, and played back to back. Its gain is applied by the device mixer.
//
// oto allows one context per process. OpenDefault creates it on the first
// call and shares it afterwards; handles are reference counted and the
// context is suspended when the last one is closed.
package output
