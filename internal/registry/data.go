package registry

// staticTable is the fixed sequence of encoding records. It is built once
// by ensureBuilt and never mutated after that. Decoder identifiers are
// resolved against golang.org/x/text/encoding (or a hand-rolled validator
// for the handful x/text does not ship) in decoders.go.
func staticTable() []Info {
	return []Info{
		// --- Unicode transforms (BOM territory; also reachable without a BOM) ---
		{Name: "utf-8", Aliases: []string{"utf8", "u8"}, Era: ModernWeb, MultiByte: true, Decoder: decUTF8},
		{Name: "utf-8-sig", Aliases: []string{"utf-8-bom"}, Era: ModernWeb, MultiByte: true, Decoder: decUTF8Sig},
		{Name: "utf-16-be", Aliases: []string{"utf-16be", "unicodefffe"}, Era: ModernWeb, MultiByte: true, Decoder: decUTF16BE},
		{Name: "utf-16-le", Aliases: []string{"utf-16le", "ucs-2"}, Era: ModernWeb, MultiByte: true, Decoder: decUTF16LE},
		{Name: "utf-32-be", Aliases: []string{"utf-32be"}, Era: ModernWeb, MultiByte: true, Decoder: decUTF32BE},
		{Name: "utf-32-le", Aliases: []string{"utf-32le"}, Era: ModernWeb, MultiByte: true, Decoder: decUTF32LE},
		{Name: "utf-7", Aliases: []string{"unicode-1-1-utf-7"}, Era: ModernWeb, MultiByte: true, Decoder: decManualNone},
		{Name: "ascii", Aliases: []string{"us-ascii", "ansi_x3.4-1968"}, Era: ModernWeb, MultiByte: false, Decoder: decASCII},

		// --- Escape-sequence encodings (handled deterministically in stage 2, but
		// still registered so results naming them satisfy the registry invariant) ---
		{Name: "iso-2022-jp", Aliases: []string{"iso2022jp"}, Era: LegacyISO, MultiByte: true, Decoder: decISO2022JP, Languages: tags("ja")},
		{Name: "iso-2022-kr", Aliases: []string{"iso2022kr"}, Era: LegacyISO, MultiByte: true, Decoder: decManualNone, Languages: tags("ko")},
		{Name: "iso-2022-cn", Aliases: []string{"iso2022cn"}, Era: LegacyISO, MultiByte: true, Decoder: decManualNone, Languages: tags("zh")},
		{Name: "hz-gb-2312", Aliases: []string{"hz"}, Era: LegacyISO, MultiByte: true, Decoder: decHZGB2312, Languages: tags("zh")},

		// --- CJK multi-byte (subject to the CJK gate, stage 6) ---
		{Name: "gb18030", Aliases: []string{}, Era: LegacyRegional, MultiByte: true, Decoder: decGB18030, Languages: tags("zh")},
		{Name: "gb2312", Aliases: []string{"euc-cn"}, Era: LegacyRegional, MultiByte: true, Decoder: decGB18030, Languages: tags("zh")},
		{Name: "cp932", Aliases: []string{"ms932", "windows-31j"}, Era: LegacyRegional, MultiByte: true, Decoder: decShiftJIS, Languages: tags("ja")},
		{Name: "shift_jis", Aliases: []string{"sjis", "shift-jis"}, Era: LegacyRegional, MultiByte: true, Decoder: decShiftJIS, Languages: tags("ja")},
		{Name: "euc-jp", Aliases: []string{"eucjp"}, Era: LegacyRegional, MultiByte: true, Decoder: decEUCJP, Languages: tags("ja")},
		{Name: "euc-kr", Aliases: []string{"euckr"}, Era: LegacyRegional, MultiByte: true, Decoder: decEUCKR, Languages: tags("ko")},
		{Name: "cp949", Aliases: []string{"uhc", "ms949"}, Era: LegacyRegional, MultiByte: true, Decoder: decEUCKR, Languages: tags("ko")},
		{Name: "big5", Aliases: []string{"big-5"}, Era: LegacyRegional, MultiByte: true, Decoder: decBig5, Languages: tags("zh")},

		// --- Single-byte Western / Latin ---
		{Name: "windows-1252", Aliases: []string{"cp1252", "cp-1252"}, Era: LegacyRegional, MultiByte: false, Decoder: decCP1252, Languages: tags("en", "fr", "de", "es")},
		{Name: "iso-8859-1", Aliases: []string{"latin1", "l1"}, Era: LegacyISO, MultiByte: false, Decoder: decISO88591, Languages: tags("en", "fr", "de", "es")},
		{Name: "iso-8859-15", Aliases: []string{"latin9", "l9"}, Era: LegacyISO, MultiByte: false, Decoder: decISO885915, Languages: tags("fr", "de")},
		{Name: "iso-8859-3", Aliases: []string{"latin3"}, Era: LegacyISO, MultiByte: false, Decoder: decISO88593},
		{Name: "iso-8859-10", Aliases: []string{"latin6"}, Era: LegacyISO, MultiByte: false, Decoder: decISO885910, Languages: tags("is")},
		{Name: "iso-8859-14", Aliases: []string{"latin8"}, Era: LegacyISO, MultiByte: false, Decoder: decISO885914},

		// --- Central European ---
		{Name: "windows-1250", Aliases: []string{"cp1250"}, Era: LegacyRegional, MultiByte: false, Decoder: decCP1250, Languages: tags("pl", "cs", "hu")},
		{Name: "iso-8859-2", Aliases: []string{"latin2", "l2"}, Era: LegacyISO, MultiByte: false, Decoder: decISO88592, Languages: tags("pl", "cs", "hu")},
		{Name: "ibm852", Aliases: []string{"cp852"}, Era: DOS, MultiByte: false, Decoder: decCP852, Languages: tags("pl", "cs")},

		// --- Cyrillic ---
		{Name: "windows-1251", Aliases: []string{"cp1251"}, Era: LegacyRegional, MultiByte: false, Decoder: decCP1251, Languages: tags("ru", "uk", "bg")},
		{Name: "koi8-r", Aliases: []string{}, Era: LegacyRegional, MultiByte: false, Decoder: decKOI8R, Languages: tags("ru")},
		{Name: "koi8-u", Aliases: []string{}, Era: LegacyRegional, MultiByte: false, Decoder: decKOI8U, Languages: tags("uk")},
		{Name: "koi8-t", Aliases: []string{}, Era: LegacyRegional, MultiByte: false, Decoder: "koi8-t", Languages: tags("tg")},
		{Name: "ibm866", Aliases: []string{"cp866"}, Era: DOS, MultiByte: false, Decoder: decCP866, Languages: tags("ru")},

		// --- Greek / Hebrew / Arabic / Turkish / Baltic ---
		{Name: "windows-1253", Aliases: []string{"cp1253"}, Era: LegacyRegional, MultiByte: false, Decoder: decCP1253, Languages: tags("el")},
		{Name: "iso-8859-7", Aliases: []string{"latin7"}, Era: LegacyISO, MultiByte: false, Decoder: decISO88597, Languages: tags("el")},
		{Name: "windows-1255", Aliases: []string{"cp1255"}, Era: LegacyRegional, MultiByte: false, Decoder: decCP1255, Languages: tags("he")},
		{Name: "iso-8859-8-i", Aliases: []string{"iso-8859-8"}, Era: LegacyISO, MultiByte: false, Decoder: decISO88598I, Languages: tags("he")},
		{Name: "windows-1256", Aliases: []string{"cp1256"}, Era: LegacyRegional, MultiByte: false, Decoder: decCP1256, Languages: tags("ar")},
		{Name: "iso-8859-6", Aliases: []string{}, Era: LegacyISO, MultiByte: false, Decoder: decISO88596, Languages: tags("ar")},
		{Name: "windows-1254", Aliases: []string{"cp1254"}, Era: LegacyRegional, MultiByte: false, Decoder: decCP1254, Languages: tags("tr")},
		{Name: "iso-8859-9", Aliases: []string{"latin5"}, Era: LegacyISO, MultiByte: false, Decoder: decISO88599, Languages: tags("tr")},
		{Name: "windows-1257", Aliases: []string{"cp1257"}, Era: LegacyRegional, MultiByte: false, Decoder: decCP1257, Languages: tags("lt", "lv")},
		{Name: "iso-8859-13", Aliases: []string{"latin7-baltic"}, Era: LegacyISO, MultiByte: false, Decoder: decISO885913, Languages: tags("lt", "lv")},

		// --- Thai ---
		{Name: "tis-620", Aliases: []string{}, Era: LegacyRegional, MultiByte: false, Decoder: decCP874, Languages: tags("th")},
		{Name: "iso-8859-11", Aliases: []string{}, Era: LegacyISO, MultiByte: false, Decoder: decCP874, Languages: tags("th")},
		{Name: "cp874", Aliases: []string{"windows-874"}, Era: LegacyRegional, MultiByte: false, Decoder: decCP874, Languages: tags("th")},

		// --- DOS codepages ---
		{Name: "cp850", Aliases: []string{"ibm850"}, Era: DOS, MultiByte: false, Decoder: decCP850, Languages: tags("en", "fr", "de")},
		{Name: "cp858", Aliases: []string{"ibm858"}, Era: DOS, MultiByte: false, Decoder: decCP858, Languages: tags("en", "fr", "de")},

		// --- Mainframe ---
		{Name: "cp037", Aliases: []string{"ebcdic-cp-us", "ibm037"}, Era: Mainframe, MultiByte: false, Decoder: decCP037, Languages: tags("en", "de")},
	}
}
