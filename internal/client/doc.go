// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line front end of TaskKeeper.
//
// Each invocation runs one subcommand (register, login, list, add, ...)
// against the REST API through [adapter.TaskAPI]. The session token returned
// by login is kept in a file so later invocations stay signed in until
// logout or until the server rejects it.
package client
