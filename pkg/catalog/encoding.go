package catalog

import "golang.org/x/text/encoding/unicode"

var (
	// ManifestEncoding decodes file-manager manifests: UTF-16 little endian,
	// honouring a byte order mark when one is present.
	ManifestEncoding = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)

	// CatalogEncoding decodes catalog files: UTF-8 with an optional BOM.
	CatalogEncoding = unicode.UTF8BOM
)
