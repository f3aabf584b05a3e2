// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package telemetry records anonymous, local-only usage events.
//
// Events go into a SQLite database under the folio config directory. Nothing
// is ever sent anywhere; the database exists so the stats command can show
// which posts get read. Recording is gated twice: the Recorder drops every
// event until consent has been accepted, and a token-bucket limiter caps the
// write rate so a scroll storm cannot grind the database.
//
// All recording is best effort. A full bucket, a closed store, or a write
// error silently drops the event; telemetry must never surface an error in
// the UI.
package telemetry
