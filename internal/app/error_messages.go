// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// passhtml command.
//
// All Msg* constants are human-readable message strings that are printed to
// the user to describe why an operation failed. Keeping them in one place
// ensures consistent wording throughout the command line.
package app

const (
	// MsgWrongPassword is shown for every decode failure. A wrong password
	// and a damaged document are deliberately indistinguishable.
	MsgWrongPassword = "wrong password or damaged document"

	// MsgNoPassword is shown when no password was typed, piped or set in the
	// environment.
	MsgNoPassword = "a password is required"

	// MsgPasswordMismatch is shown when the repeated password differs.
	MsgPasswordMismatch = "passwords do not match"

	// MsgDocumentEmpty is shown when a document holds no encrypted content.
	MsgDocumentEmpty = "document holds no encrypted content"

	// MsgDocumentNotFound is shown when an input file does not exist.
	MsgDocumentNotFound = "file not found"

	// MsgNotOurDocument is shown when a document carries no application
	// marker or a malformed envelope.
	MsgNotOurDocument = "not a passhtml document"

	// MsgAppTypeMismatch is shown when a document belongs to the other
	// application.
	MsgAppTypeMismatch = "document belongs to a different app"

	// MsgIncompatibleDocument is shown when an envelope was produced with
	// settings this version cannot read.
	MsgIncompatibleDocument = "document was written by an incompatible version"

	// MsgInvalidContent is shown when the content to encrypt is rejected.
	MsgInvalidContent = "invalid content"

	// MsgAttachmentNotSupported is shown when an attachment is added to a
	// passwords document.
	MsgAttachmentNotSupported = "attachments are only supported by the notes app"

	// MsgInvalidConfig is shown when the configuration fails validation.
	MsgInvalidConfig = "invalid configuration"
)
