package keywordset

// cppWords lists the C/C++ keywords, operators, punctuators, preprocessor
// directives and digraphs recognized as non-identifier tokens. Ported
// verbatim from original_source/finder.h's cpp_keywords table.
var cppWords = []string{
	// Keywords
	"alignas", "alignof", "and", "and_eq", "asm", "auto", "bitand", "bitor", "bool", "break",
	"case", "catch", "char", "char8_t", "char16_t", "char32_t", "class", "compl", "concept",
	"const", "consteval", "constexpr", "constinit", "const_cast", "continue", "co_await",
	"co_return", "co_yield", "decltype", "default", "delete", "do", "double", "dynamic_cast",
	"else", "enum", "explicit", "export", "extern", "false", "float", "for", "friend", "goto", "if",
	"inline", "int", "long", "mutable", "namespace", "new", "noexcept", "not", "not_eq", "nullptr",
	"operator", "or", "or_eq", "private", "protected", "public", "register", "reinterpret_cast",
	"requires", "return", "short", "signed", "sizeof", "static", "static_assert", "static_cast",
	"struct", "switch", "template", "this", "thread_local", "throw", "true", "try", "typedef",
	"typeid", "typename", "union", "unsigned", "using", "virtual", "void", "volatile", "wchar_t",
	"while", "xor", "xor_eq",

	// Operators
	"+", "-", "*", "/", "%", "++", "--", "=",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<=", ">>=", "==", "!=", "<", ">",
	"<=", ">=", "<=>", "!", "&&", "||", "~", "&", "|", "^", "<<", ">>", ".", "->", ".*", "->*",
	"[]", "()", "?:",

	// Punctuators / syntax
	"{", "}", "[", "]", "(", ")", ";", ",", "::", ":", "...", "#", "##", "=>",

	// Preprocessor
	"#define", "#undef", "#include", "#ifdef", "#ifndef", "#if", "#else", "#elif", "#endif",
	"#error", "#pragma", "#line",

	// Digraphs
	"<%", "%>", "<:", ":>", "%:", "%:%:",
}

// CPP is the shared keyword set for C and C++ source.
var CPP = New(cppWords)

// IsCPPKeyword reports whether s is a C/C++ keyword, operator,
// punctuator, preprocessor directive or digraph.
func IsCPPKeyword(s string) bool {
	return CPP.Contains(s)
}
