package identrank

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/asticode/go-astilog"
)

// For details on the tag format supported, see http://ctags.sourceforge.net/FORMAT
// TL;DR: The only supported format is the one Exuberant Ctags emits.
//
// Each record is IDENTIFIER<TAB>PATH<TAB>junk with a language:NAME token
// somewhere in the trailing field. Records are separated by LF or CRLF.
var tagRegex *regexp.Regexp

func init() {
	tagRegex = regexp.MustCompile(
		`(?m)^([^\t\n\r]+)\t([^\t\n\r]+)\t[^\r\n]*?language:([^\t\n\r]+)`)
}

// List of languages Universal Ctags supports:
//
//	ctags --list-languages
//
// To map a language name to a filetype, see $VIMRUNTIME/filetype.vim.
var langToFiletype = map[string]string{
	"Ada":                 "ada",
	"AnsiblePlaybook":     "ansibleplaybook",
	"Ant":                 "ant",
	"Asm":                 "asm",
	"Asp":                 "asp",
	"Autoconf":            "autoconf",
	"Automake":            "automake",
	"Awk":                 "awk",
	"Basic":               "basic",
	"BETA":                "beta",
	"C":                   "c",
	"C#":                  "cs",
	"C++":                 "cpp",
	"Clojure":             "clojure",
	"Cobol":               "cobol",
	"CPreProcessor":       "cpreprocessor",
	"CSS":                 "css",
	"ctags":               "ctags",
	"CUDA":                "cuda",
	"D":                   "d",
	"DBusIntrospect":      "dbusintrospect",
	"Diff":                "diff",
	"DosBatch":            "dosbatch",
	"DTD":                 "dtd",
	"DTS":                 "dts",
	"Eiffel":              "eiffel",
	"elm":                 "elm",
	"Erlang":              "erlang",
	"Falcon":              "falcon",
	"Flex":                "flex",
	"Fortran":             "fortran",
	"gdbinit":             "gdb",
	"Glade":               "glade",
	"Go":                  "go",
	"HTML":                "html",
	"Iniconf":             "iniconf",
	"ITcl":                "itcl",
	"Java":                "java",
	"JavaProperties":      "jproperties",
	"JavaScript":          "javascript",
	"JSON":                "json",
	"LdScript":            "ldscript",
	"Lisp":                "lisp",
	"Lua":                 "lua",
	"M4":                  "m4",
	"Make":                "make",
	"man":                 "man",
	"MatLab":              "matlab",
	"Maven2":              "maven2",
	"Myrddin":             "myrddin",
	"ObjectiveC":          "objc",
	"OCaml":               "ocaml",
	"Pascal":              "pascal",
	"passwd":              "passwd",
	"Perl":                "perl",
	"Perl6":               "perl6",
	"PHP":                 "php",
	"PlistXML":            "plistxml",
	"pod":                 "pod",
	"Protobuf":            "protobuf",
	"PuppetManifest":      "puppet",
	"Python":              "python",
	"PythonLoggingConfig": "pythonloggingconfig",
	"QemuHX":              "qemuhx",
	"R":                   "r",
	"RelaxNG":             "rng",
	"reStructuredText":    "rst",
	"REXX":                "rexx",
	"Robot":               "robot",
	"RpmSpec":             "spec",
	"RSpec":               "rspec",
	"Ruby":                "ruby",
	"Rust":                "rust",
	"Scheme":              "scheme",
	"Sh":                  "sh",
	"SLang":               "slang",
	"SML":                 "sml",
	"SQL":                 "sql",
	"SVG":                 "svg",
	"SystemdUnit":         "systemd",
	"SystemVerilog":       "systemverilog",
	"Tcl":                 "tcl",
	"TclOO":               "tcloo",
	"Tex":                 "tex",
	"TTCN":                "ttcn",
	"Vera":                "vera",
	"Verilog":             "verilog",
	"VHDL":                "vhdl",
	"Vim":                 "vim",
	"WindRes":             "windres",
	"XSLT":                "xslt",
	"YACC":                "yacc",
	"Yaml":                "yaml",
	"YumRepo":             "yumrepo",
	"Zephir":              "zephir",
}

func filetypeForLanguage(language string) string {
	if filetype, ok := langToFiletype[language]; ok {
		return filetype
	}
	return strings.ToLower(language)
}

// weaklyCanonical resolves symlinks over the longest existing prefix of
// the path and keeps the non-existent tail as-is.
func weaklyCanonical(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	parent := filepath.Dir(path)
	if parent == path {
		return path
	}
	return filepath.Join(weaklyCanonical(parent), filepath.Base(path))
}

// ExtractIdentifiersFromTagsFile parses the tag file at path into a
// (filetype, filepath, identifiers) map. Paths are resolved relative to
// the tag file's directory and canonicalized. An unreadable tag file
// yields an empty map; missing tag files must not abort completion.
func ExtractIdentifiersFromTagsFile(pathToTagFile string) FiletypeIdentifierMap {
	identifiers := make(FiletypeIdentifierMap)

	contents, err := os.ReadFile(pathToTagFile)
	if err != nil {
		astilog.Warnf("reading tags file %s: %v", pathToTagFile, err)
		return identifiers
	}

	tagDir := filepath.Dir(pathToTagFile)
	for _, match := range tagRegex.FindAllStringSubmatch(string(contents), -1) {
		identifier, path, language := match[1], match[2], match[3]

		filetype := filetypeForLanguage(language)
		if !filepath.IsAbs(path) {
			path = filepath.Join(tagDir, path)
		}
		path = weaklyCanonical(path)

		if identifiers[filetype] == nil {
			identifiers[filetype] = make(FilepathToIdentifiers)
		}
		identifiers[filetype][path] = append(identifiers[filetype][path], identifier)
	}
	return identifiers
}
