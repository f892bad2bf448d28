package rheader

type (
	// Header occupies directory slot 0. Checksum is named after the field
	// in the Epson documentation, but it holds the size of the file area
	// in bytes and is not an integrity check.
	Header struct {
		ID         []byte `json:"id"`
		Capacity   int    `json:"capacity"`
		Checksum   int    `json:"checksum"`
		SystemName string `json:"system_name"`
		ROMName    string `json:"rom_name"`
		DirEntries int    `json:"dir_entries"`
		V          string `json:"v"`
		Version    string `json:"version"`
		Month      string `json:"month"`
		Day        string `json:"day"`
		Year       string `json:"year"`
	}
)

const (
	DefaultHeaderSize = 32
)

// Field widths, in on-ROM order.
const (
	idSize         = 2
	systemNameSize = 3
	romNameSize    = 14
	vSize          = 1
	versionSize    = 2
	dateFieldSize  = 2
)
