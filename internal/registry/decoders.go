package registry

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// Decoder identifiers. Most resolve directly to a golang.org/x/text/encoding
// value via xtextDecoders; the ones absent from that map (ascii, utf-32-*,
// koi8-t, decManualNone) have no x/text counterpart and are validated by
// hand-rolled logic in ManualValidate.
const (
	decUTF8       DecoderID = "utf-8"
	decUTF8Sig    DecoderID = "utf-8-sig"
	decUTF16BE    DecoderID = "utf-16-be"
	decUTF16LE    DecoderID = "utf-16-le"
	decUTF32BE    DecoderID = "utf-32-be"
	decUTF32LE    DecoderID = "utf-32-le"
	decASCII      DecoderID = "ascii"
	decManualNone DecoderID = "manual-none" // ISO-7-style escape encodings resolved entirely in stage 2

	decISO2022JP DecoderID = "iso-2022-jp"
	decHZGB2312  DecoderID = "hz-gb-2312"
	decGB18030   DecoderID = "gb18030"
	decShiftJIS  DecoderID = "shift-jis"
	decEUCJP     DecoderID = "euc-jp"
	decEUCKR     DecoderID = "euc-kr"
	decBig5      DecoderID = "big5"

	decCP1252    DecoderID = "cp1252"
	decISO88591  DecoderID = "iso-8859-1"
	decISO885915 DecoderID = "iso-8859-15"
	decISO88593  DecoderID = "iso-8859-3"
	decISO885910 DecoderID = "iso-8859-10"
	decISO885914 DecoderID = "iso-8859-14"

	decCP1250   DecoderID = "cp1250"
	decISO88592 DecoderID = "iso-8859-2"
	decCP852    DecoderID = "cp852"

	decCP1251 DecoderID = "cp1251"
	decKOI8R  DecoderID = "koi8-r"
	decKOI8U  DecoderID = "koi8-u"
	decCP866  DecoderID = "cp866"

	decCP1253   DecoderID = "cp1253"
	decISO88597 DecoderID = "iso-8859-7"
	decCP1255   DecoderID = "cp1255"
	decISO88598I DecoderID = "iso-8859-8-i"
	decCP1256   DecoderID = "cp1256"
	decISO88596 DecoderID = "iso-8859-6"
	decCP1254   DecoderID = "cp1254"
	decISO88599 DecoderID = "iso-8859-9"
	decCP1257   DecoderID = "cp1257"
	decISO885913 DecoderID = "iso-8859-13"

	decCP874 DecoderID = "cp874"
	decCP850 DecoderID = "cp850"
	decCP858 DecoderID = "cp858"
	decCP037 DecoderID = "cp037"
)

var xtextDecoders = map[DecoderID]encoding.Encoding{
	decUTF8:    unicode.UTF8,
	decUTF8Sig: unicode.UTF8BOM,
	decUTF16BE: unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	decUTF16LE: unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),

	decISO2022JP: japanese.ISO2022JP,
	decHZGB2312:  simplifiedchinese.HZGB2312,
	decGB18030:   simplifiedchinese.GB18030,
	decShiftJIS:  japanese.ShiftJIS,
	decEUCJP:     japanese.EUCJP,
	decEUCKR:     korean.EUCKR,
	decBig5:      traditionalchinese.Big5,

	decCP1252:    charmap.Windows1252,
	decISO88591:  charmap.ISO8859_1,
	decISO885915: charmap.ISO8859_15,
	decISO88593:  charmap.ISO8859_3,
	decISO885910: charmap.ISO8859_10,
	decISO885914: charmap.ISO8859_14,

	decCP1250:   charmap.Windows1250,
	decISO88592: charmap.ISO8859_2,
	decCP852:    charmap.CodePage852,

	decCP1251: charmap.Windows1251,
	decKOI8R:  charmap.KOI8R,
	decKOI8U:  charmap.KOI8U,
	decCP866:  charmap.CodePage866,

	decCP1253:    charmap.Windows1253,
	decISO88597:  charmap.ISO8859_7,
	decCP1255:    charmap.Windows1255,
	decISO88598I: charmap.ISO8859_8I,
	decCP1256:    charmap.Windows1256,
	decISO88596:  charmap.ISO8859_6,
	decCP1254:    charmap.Windows1254,
	decISO88599:  charmap.ISO8859_9,
	decCP1257:    charmap.Windows1257,
	decISO885913: charmap.ISO8859_13,

	decCP874: charmap.Windows874,
	decCP850: charmap.CodePage850,
	decCP858: charmap.CodePage858,
	decCP037: charmap.CodePage037,
}

// XText resolves a DecoderID to a golang.org/x/text/encoding.Encoding. The
// second return is false for encodings with no x/text equivalent (ascii,
// utf-32-*, koi8-t, and utf-7/iso-2022-kr/iso-2022-cn, which are resolved
// in stage 2 before the registry's decoder is ever consulted).
func XText(id DecoderID) (encoding.Encoding, bool) {
	enc, ok := xtextDecoders[id]
	return enc, ok
}

// IsManual reports whether id has no x/text backing and must go through
// ManualValidate instead.
func IsManual(id DecoderID) bool {
	_, ok := xtextDecoders[id]
	return !ok
}
