// Package normalisers holds decoders that turn stored message payloads into
// plain text the code detector can read.
//
// attributedbody decodes the serialized rich-text body Messages stores when
// the plain text column is empty.
package normalisers
