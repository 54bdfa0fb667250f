// Package mimetype holds the MIME type of a file as reported by a [Detector] and the MIME keys
// that configuration rules use to match it.
//
// A detected [MimeType] such as text/plain is matched against a configured [Key] such as
// text/* or Text/Plain. Both parts compare case-insensitively and a key with subtype * matches
// any subtype of its supertype.
package mimetype
