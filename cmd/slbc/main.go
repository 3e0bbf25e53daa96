// slbc - Sanskrit Linguistic Binary Codec CLI
//
// Usage:
//
//	slbc encode [text] [-i file] [-o file] [--hex]   Encode IAST text to .slbc
//	slbc decode -i file [--to script] [-o file]      Decode .slbc to text
//	slbc inspect [--byte X | --from-hex "..." | -i file]
//	slbc transform --op NAME <byte> [byte2]          Apply a byte transform
//	slbc roundtrip <text>                            Encode, decode, compare
//	slbc version                                     Print version info
//
// All commands accept --config <path> (TOML: script, hex, log_level) and
// -v for debug logging.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/abhyagra/slbc/container"
	"github.com/abhyagra/slbc/slbc"
)

const version = "0.10.0"

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args, cfg := parseCommonFlags(os.Args[2:])

	switch cmd {
	case "encode":
		cmdEncode(args, cfg)
	case "decode":
		cmdDecode(args, cfg)
	case "inspect":
		cmdInspect(args)
	case "transform":
		cmdTransform(args)
	case "roundtrip":
		cmdRoundtrip(args)
	case "version", "--version":
		fmt.Printf("slbc %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

// parseCommonFlags strips --config and -v from the argument list and
// applies them, returning the remaining arguments.
func parseCommonFlags(args []string) ([]string, cliConfig) {
	cfg := defaultConfig()
	var rest []string

	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "--config" && i+1 < len(args):
			loaded, err := loadConfig(args[i+1])
			if err != nil {
				fatal("config: %v", err)
			}
			cfg = loaded
			i++
		case args[i] == "-v":
			cfg.LogLevel = "debug"
		default:
			rest = append(rest, args[i])
		}
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}
	log = log.Level(level)

	return rest, cfg
}

// ── encode ──

func cmdEncode(args []string, cfg cliConfig) {
	var text, inPath, outPath string
	hex := cfg.Hex

	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "-i" && i+1 < len(args):
			inPath = args[i+1]
			i++
		case args[i] == "-o" && i+1 < len(args):
			outPath = args[i+1]
			i++
		case args[i] == "--hex":
			hex = true
		case !strings.HasPrefix(args[i], "-"):
			text = args[i]
		}
	}

	if text == "" && inPath == "" {
		fatal("encode: provide IAST text or -i <file>")
	}
	if text == "" {
		data, err := os.ReadFile(inPath)
		if err != nil {
			fatal("read %s: %v", inPath, err)
		}
		text = string(data)
	}

	text = strings.TrimSpace(text)
	payload, err := slbc.EncodeIAST(text)
	if err != nil {
		fatal("encode: %v", err)
	}
	data := container.Build(payload)
	log.Debug().Int("payload", len(payload)).Int("container", len(data)).Msg("encoded")

	switch {
	case hex:
		printHexDump(data)
	case outPath != "":
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			fatal("write %s: %v", outPath, err)
		}
		log.Info().Str("path", outPath).Int("bytes", len(data)).Msg("wrote container")
	default:
		printHexDump(data)
	}
}

// ── decode ──

func cmdDecode(args []string, cfg cliConfig) {
	var inPath, outPath string
	to := cfg.Script

	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "-i" && i+1 < len(args):
			inPath = args[i+1]
			i++
		case args[i] == "-o" && i+1 < len(args):
			outPath = args[i+1]
			i++
		case args[i] == "--to" && i+1 < len(args):
			to = args[i+1]
			i++
		}
	}

	if inPath == "" {
		fatal("decode: provide -i <file>")
	}

	script, err := parseScript(to)
	if err != nil {
		fatal("%v", err)
	}

	data, err := os.ReadFile(inPath)
	if err != nil {
		fatal("read %s: %v", inPath, err)
	}

	text, err := decodeContainer(data, script)
	if err != nil {
		fatal("decode: %v", err)
	}

	if outPath != "" {
		if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
			fatal("write %s: %v", outPath, err)
		}
		log.Info().Str("path", outPath).Msg("wrote text")
		return
	}
	fmt.Println(text)
}

// decodeContainer parses a container and decodes every PHON chunk in
// order.
func decodeContainer(data []byte, script slbc.Script) (string, error) {
	_, chunks, err := container.Parse(data)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	for _, chunk := range chunks {
		if chunk.Type != container.ChunkPhon {
			continue
		}
		text, err := slbc.DecodePhon(chunk.Payload, script)
		if err != nil {
			return "", err
		}
		out.WriteString(text)
	}
	return out.String(), nil
}

func parseScript(s string) (slbc.Script, error) {
	switch s {
	case "iast":
		return slbc.ScriptIAST, nil
	case "devanagari", "deva":
		return slbc.ScriptDevanagari, nil
	}
	return 0, fmt.Errorf("unknown script %q (use 'iast' or 'devanagari')", s)
}

// ── inspect ──

func cmdInspect(args []string) {
	var byteStr, hexStr, inPath string

	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "--byte" && i+1 < len(args):
			byteStr = args[i+1]
			i++
		case args[i] == "--from-hex" && i+1 < len(args):
			hexStr = args[i+1]
			i++
		case args[i] == "-i" && i+1 < len(args):
			inPath = args[i+1]
			i++
		}
	}

	switch {
	case byteStr != "":
		b, err := slbc.ParseHexByte(byteStr)
		if err != nil {
			fatal("%v", err)
		}
		fmt.Println(slbc.FormatByteInfo(slbc.InspectByte(b)))

	case hexStr != "":
		infos, err := slbc.InspectHexStream(hexStr)
		if err != nil {
			fatal("%v", err)
		}
		for i, info := range infos {
			if i > 0 {
				fmt.Println("  ───")
			}
			fmt.Println(slbc.FormatByteInfo(info))
		}

	case inPath != "":
		data, err := os.ReadFile(inPath)
		if err != nil {
			fatal("read %s: %v", inPath, err)
		}
		inspectContainer(data)

	default:
		fatal("inspect: provide --byte, --from-hex, or -i <file>")
	}
}

func inspectContainer(data []byte) {
	hdr, chunks, err := container.Parse(data)
	if err != nil {
		fatal("parse: %v", err)
	}

	fmt.Println("=== SLBC Container ===")
	fmt.Printf("  Version: %d.%d.%d.%d\n",
		hdr.Version[0], hdr.Version[1], hdr.Version[2], hdr.Version[3])
	fmt.Printf("  Flags:   0b%08b (0x%02X)\n", hdr.Flags, hdr.Flags)
	fmt.Printf("    HAS_LIPI:     %v\n", hdr.HasLipi())
	fmt.Printf("    HAS_META:     %v\n", hdr.HasMeta())
	fmt.Printf("    INTERLEAVED:  %v\n", hdr.Interleaved())
	fmt.Printf("    VEDIC:        %v\n", hdr.Vedic())
	fmt.Printf("    VYA:          %v\n", hdr.Vya())
	fmt.Printf("  Extended header: %d bytes\n", hdr.ExtendedHeaderLen)
	fmt.Printf("  Chunks: %d\n", len(chunks))

	for ci, chunk := range chunks {
		fmt.Printf("\n  Chunk %d: %s (0x%02X), %d bytes payload\n",
			ci, container.ChunkTypeName(chunk.Type), chunk.Type, len(chunk.Payload))

		if chunk.Type == container.ChunkPhon && len(chunk.Payload) > 0 {
			fmt.Println("    Bytes:")
			for _, b := range chunk.Payload {
				info := slbc.InspectByte(b)
				fmt.Printf("      %4s  %s\n", info.Hex, info.Description)
			}
		}
	}
}

// ── transform ──

func cmdTransform(args []string) {
	var op, byteStr, byte2Str string

	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "--op" && i+1 < len(args):
			op = args[i+1]
			i++
		case !strings.HasPrefix(args[i], "-"):
			if byteStr == "" {
				byteStr = args[i]
			} else {
				byte2Str = args[i]
			}
		}
	}

	if op == "" || byteStr == "" {
		fatal("transform: provide --op NAME and a hex byte")
	}

	b, err := slbc.ParseHexByte(byteStr)
	if err != nil {
		fatal("%v", err)
	}

	var result slbc.TransformResult
	switch op {
	case "guna":
		result, err = slbc.Guna(b)
	case "vrddhi":
		result, err = slbc.Vrddhi(b)
	case "dirgha":
		result, err = slbc.Dirgha(b)
	case "hrasva":
		result, err = slbc.Hrasva(b)
	case "jastva":
		result, err = slbc.Jastva(b)
	case "toggle-voice":
		result, err = slbc.ToggleVoice(b)
	case "toggle-aspiration":
		result, err = slbc.ToggleAspiration(b)
	case "nasal":
		result, err = slbc.MakeNasal(b)
	case "homorganic-nasal":
		result, err = slbc.HomorganicNasal(b)
	case "samprasarana-svara":
		result, err = slbc.SamprasaranaToSvara(b)
	case "samprasarana-sonorant":
		result, err = slbc.SamprasaranaToSonorant(b)
	case "savarna-dirgha":
		if byte2Str == "" {
			fatal("savarṇa-dīrgha requires two bytes")
		}
		var b2 byte
		b2, err = slbc.ParseHexByte(byte2Str)
		if err != nil {
			fatal("%v", err)
		}
		result, err = slbc.SavarnaDirgha(b, b2)
	default:
		fatal("unknown operation %q\nValid: guna, vrddhi, dirgha, hrasva, jastva, toggle-voice, toggle-aspiration, nasal, homorganic-nasal, samprasarana-svara, samprasarana-sonorant, savarna-dirgha", op)
	}
	if err != nil {
		fatal("%v", err)
	}

	fmt.Println(result)
}

// ── roundtrip ──

func cmdRoundtrip(args []string) {
	if len(args) < 1 {
		fatal("roundtrip: provide IAST text")
	}
	input := strings.TrimSpace(args[0])
	fmt.Fprintf(os.Stderr, "Input (IAST):  %s\n", input)

	payload, err := slbc.EncodeIAST(input)
	if err != nil {
		fatal("encode: %v", err)
	}
	data := container.Build(payload)

	fmt.Fprintf(os.Stderr, "Encoded:       %d bytes (.slbc container)\n", len(data))
	fmt.Fprint(os.Stderr, "PHON payload:  ")
	for _, b := range payload {
		fmt.Fprintf(os.Stderr, "%02X ", b)
	}
	fmt.Fprintln(os.Stderr)

	decoded, err := decodeContainer(data, slbc.ScriptIAST)
	if err != nil {
		fatal("decode: %v", err)
	}
	fmt.Fprintf(os.Stderr, "Output (IAST): %s\n", decoded)

	deva, err := decodeContainer(data, slbc.ScriptDevanagari)
	if err != nil {
		fatal("decode: %v", err)
	}
	fmt.Fprintf(os.Stderr, "Output (Deva): %s\n", deva)

	if decoded != input {
		fmt.Fprintln(os.Stderr, "\nround-trip FAILED")
		fmt.Fprintf(os.Stderr, "  expected: %q\n", input)
		fmt.Fprintf(os.Stderr, "  got:      %q\n", decoded)
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, "\nround-trip ok")
}

// ── helpers ──

func printHexDump(data []byte) {
	for i := 0; i < len(data); i += 16 {
		end := i + 16
		if end > len(data) {
			end = len(data)
		}
		row := data[i:end]

		fmt.Printf("%08X  ", i)
		for j := 0; j < 16; j++ {
			if j == 8 {
				fmt.Print(" ")
			}
			if j < len(row) {
				fmt.Printf("%02X ", row[j])
			} else {
				fmt.Print("   ")
			}
		}
		fmt.Print(" |")
		for _, b := range row {
			if b >= 0x20 && b < 0x7F {
				fmt.Printf("%c", b)
			} else {
				fmt.Print(".")
			}
		}
		fmt.Println("|")
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "slbc: "+format+"\n", args...)
	os.Exit(1)
}

func printUsage() {
	fmt.Fprint(os.Stderr, `slbc - Sanskrit Linguistic Binary Codec (v`+version+`)

Usage:
  slbc encode [text] [-i file] [-o file] [--hex]   Encode IAST text to .slbc
  slbc decode -i file [--to script] [-o file]      Decode .slbc to text
  slbc inspect [--byte X | --from-hex "..." | -i file]
  slbc transform --op NAME <byte> [byte2]          Apply a byte transform
  slbc roundtrip <text>                            Encode, decode, compare
  slbc version                                     Print version info

Common flags: --config <path> (TOML), -v (debug logging)
`)
}
