// Package logsink routes the process-wide slog logger into a state.Store.
//
// A single Sink is built by the composition root, installed once before the
// records it should see are emitted, and uninstalled at shutdown. Every
// record is captured regardless of level or category; a record that cannot
// be stored is dropped silently so logging never fails at the call site.
//
//	store := &state.Store{}
//	sink := logsink.New(store)
//	sink.Install()
//	defer sink.Uninstall()
//
//	slog.Warn("low disk", logsink.CategoryKey, logsink.CategorySystem)
package logsink
