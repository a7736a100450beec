package globroots

// GlobRoot tells the page-file scanner both where it may read and what to
// look for. Exactly one of three shapes is populated:
//
//   - whole-project root: IncludePath is "/", nothing else set; always the
//     first entry of a resolved list.
//   - package-derived root: FSAllowRoot is the package's physical directory
//     (extends the scanner's allow-list); IncludePath, when set, is the
//     root-relative prefix to glob under.
//   - dist root: IncludePageFile is the path of a single pre-built page file,
//     included verbatim with no directory crawl.
//
// All paths are stored in forward-slash form.
type GlobRoot struct {
	FSAllowRoot     string `json:"fs_allow_root,omitempty"`
	IncludePath     string `json:"include_path,omitempty"`
	IncludePageFile string `json:"include_page_file,omitempty"`
}
