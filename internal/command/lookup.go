package command

// emojiTable maps a spoken name to its glyph. Grounded verbatim on
// original_source/src/lookups.rs's execute_emoji match arms (~90 entries
// across faces/gestures/hearts/animals/objects, per spec.md §6).
var emojiTable = map[string]string{
	// Faces
	"smile": "😊", "happy": "😊",
	"laugh": "😂", "lol": "😂", "laughing": "😂",
	"joy": "🤣",
	"wink": "😉",
	"love": "😍", "heart eyes": "😍",
	"cool": "😎", "sunglasses": "😎",
	"think": "🤔", "thinking": "🤔", "hmm": "🤔",
	"cry": "😭", "sad": "😭", "crying": "😭",
	"angry": "😠", "mad": "😠",
	"skull": "💀", "dead": "💀",
	"eye roll": "🙄", "roll eyes": "🙄",
	"shush": "🤫", "quiet": "🤫",
	"mind blown": "🤯", "exploding head": "🤯",
	"clown": "🤡",
	"nerd": "🤓",
	"sick": "🤢", "ill": "🤢",
	"scream": "😱",

	// Gestures
	"thumbs up": "👍", "thumb up": "👍", "yes": "👍",
	"thumbs down": "👎", "thumb down": "👎", "no": "👎",
	"clap": "👏", "clapping": "👏",
	"wave": "👋", "hi": "👋", "bye": "👋",
	"shrug": "🤷",
	"facepalm": "🤦", "face palm": "🤦",
	"pray": "🙏", "please": "🙏", "thanks": "🙏",
	"muscle": "💪", "strong": "💪", "flex": "💪",
	"point up": "☝️",
	"point right": "👉",
	"point left": "👈",
	"point down": "👇",
	"ok": "👌", "okay": "👌",
	"peace": "✌️", "victory": "✌️",
	"rock": "🤘", "metal": "🤘",
	"middle finger": "🖕", "fuck you": "🖕",

	// Hearts & love
	"heart": "❤️", "red heart": "❤️",
	"blue heart": "💙",
	"green heart": "💚",
	"yellow heart": "💛",
	"purple heart": "💜",
	"black heart": "🖤",
	"white heart": "🤍",
	"orange heart": "🧡",
	"broken heart": "💔",
	"sparkling heart": "💖",
	"kiss": "😘",

	// Animals
	"dog": "🐕", "wag": "🐕",
	"cat": "🐈",
	"crab": "🦀", "rust": "🦀",
	"snake": "🐍",
	"bug": "🐛", "beetle": "🐛",
	"butterfly": "🦋",
	"unicorn": "🦄",
	"dragon": "🐉",
	"shark": "🦈",
	"whale": "🐋",
	"octopus": "🐙",

	// Objects & symbols
	"fire": "🔥", "lit": "🔥",
	"star": "⭐", "gold star": "⭐",
	"sparkles": "✨", "sparkle": "✨",
	"lightning": "⚡", "zap": "⚡",
	"poop": "💩", "shit": "💩",
	"100": "💯", "hundred": "💯",
	"check": "✅", "checkmark": "✅",
	"x": "❌", "cross": "❌",
	"warning": "⚠️",
	"question": "❓",
	"exclamation": "❗",
	"pin": "📌", "pushpin": "📌",
	"bulb": "💡", "idea": "💡", "lightbulb": "💡",
	"gear": "⚙️", "settings": "⚙️",
	"rocket": "🚀",
	"trophy": "🏆",
	"medal": "🏅",
	"crown": "👑",
	"money": "💰", "cash": "💰",
	"gem": "💎", "diamond": "💎",
	"gift": "🎁", "present": "🎁",
	"party": "🎉", "celebrate": "🎉",
	"balloon": "🎈",
	"beer": "🍺", "cheers": "🍺",
	"coffee": "☕",
	"pizza": "🍕",
	"taco": "🌮",
}

// punctuationTable maps a spoken name to its ASCII (or short multi-char)
// symbol, including common Whisper mishearings ("colin"->":", "carrot"->"^").
// Grounded verbatim on lookups.rs's execute_punctuation match arms.
var punctuationTable = map[string]string{
	"period": ".", "dot": ".", "full stop": ".", "point": ".",
	"comma": ",", "coma": ",",
	"question": "?", "question mark": "?",
	"exclamation": "!", "exclamation mark": "!", "bang": "!", "exclamation point": "!",
	"colon": ":", "colin": ":", "cologne": ":",
	"semicolon": ";", "semi colon": ";", "semi colin": ";", "semicolin": ";",
	"ellipsis": "...", "ellipses": "...", "dot dot dot": "...",

	"quote": "\"", "double quote": "\"", "quotes": "\"", "quotation": "\"",
	"single quote": "'", "apostrophe": "'", "apostrophy": "'",
	"backtick": "`", "grave": "`", "back tick": "`", "back tic": "`", "backtic": "`",

	"open paren": "(", "left paren": "(", "open parenthesis": "(", "open parentheses": "(",
	"close paren": ")", "right paren": ")", "close parenthesis": ")", "close parentheses": ")",
	"open bracket": "[", "left bracket": "[", "open square": "[",
	"close bracket": "]", "right bracket": "]", "close square": "]",
	"open brace": "{", "left brace": "{", "open curly": "{", "open curley": "{",
	"close brace": "}", "right brace": "}", "close curly": "}", "close curley": "}",
	"less than": "<", "open angle": "<", "left angle": "<", "left chevron": "<",
	"greater than": ">", "close angle": ">", "right angle": ">", "right chevron": ">",

	"plus": "+", "positive": "+",
	"minus": "-", "dash": "-", "hyphen": "-", "negative": "-",
	"equals": "=", "equal": "=", "equal sign": "=", "equals sign": "=",
	"underscore": "_", "under score": "_", "underline": "_",
	"asterisk": "*", "star": "*", "asterix": "*", "astrix": "*", "asterisks": "*",
	"slash": "/", "forward slash": "/", "forwardslash": "/",
	"backslash": "\\", "back slash": "\\", "backward slash": "\\",
	"pipe": "|", "bar": "|", "vertical bar": "|", "vertical line": "|",
	"caret": "^", "carrot": "^", "karet": "^", "carret": "^", "hat": "^",
	"tilde": "~", "tilda": "~", "tildy": "~", "squiggle": "~",
	"percent": "%", "percentage": "%", "per cent": "%",
	"ampersand": "&", "and sign": "&", "and symbol": "&",
	"at": "@", "at sign": "@", "at symbol": "@",
	"hash": "#", "hashtag": "#", "pound": "#", "number sign": "#", "hash tag": "#", "octothorpe": "#",
	"dollar": "$", "dollar sign": "$", "dollars": "$",

	"arrow": "=>", "fat arrow": "=>", "thick arrow": "=>", "rocket": "=>",
	"thin arrow": "->", "skinny arrow": "->", "dash arrow": "->", "hyphen arrow": "->",
	"double colon": "::", "scope": "::", "colon colon": "::", "colin colin": "::",
	"double equals": "==", "equals equals": "==", "equal equal": "==",
	"not equals": "!=", "not equal": "!=", "bang equals": "!=", "exclamation equals": "!=",
	"less than or equal": "<=", "less equal": "<=", "less or equal": "<=",
	"greater than or equal": ">=", "greater equal": ">=", "greater or equal": ">=",
	"plus equals": "+=", "plus equal": "+=",
	"minus equals": "-=", "minus equal": "-=", "dash equals": "-=",
	"and and": "&&", "double and": "&&", "ampersand ampersand": "&&",
	"or or": "||", "double or": "||", "pipe pipe": "||", "double pipe": "||",
}

// natoTable is the spell-mode phonetic/digit/punctuation word-to-char map.
// Grounded on lookups.rs's word_to_char (NATO + number-word + punct-word
// branches merged into one table; raw single-letter/digit fallback is
// handled separately in shiftspell.go since it isn't a fixed lookup).
var natoTable = map[string]rune{
	"alpha": 'a', "alfa": 'a',
	"bravo": 'b',
	"charlie": 'c',
	"delta": 'd',
	"echo": 'e',
	"foxtrot": 'f',
	"golf": 'g',
	"hotel": 'h',
	"india": 'i',
	"juliet": 'j', "juliett": 'j',
	"kilo": 'k',
	"lima": 'l',
	"mike": 'm',
	"november": 'n',
	"oscar": 'o',
	"papa": 'p',
	"quebec": 'q',
	"romeo": 'r',
	"sierra": 's',
	"tango": 't',
	"uniform": 'u',
	"victor": 'v',
	"whiskey": 'w',
	"xray": 'x', "x-ray": 'x',
	"yankee": 'y',
	"zulu": 'z',

	"zero": '0', "one": '1', "two": '2', "three": '3', "four": '4',
	"five": '5', "six": '6', "seven": '7', "eight": '8', "nine": '9',

	"space": ' ',
	"dot": '.', "point": '.',
	"coma": ',',
	"at sign": '@',
	"hyphen": '-',
	"under score": '_', "underline": '_',
	"forward slash": '/',
	"colin": ':', "cologne": ':',
	"semi colon": ';', "semi colin": ';',
	"pound": '#', "hashtag": '#', "hash tag": '#', "octothorpe": '#',
	"dollars": '$',
	"percentage": '%',
	"and": '&',
	"astrix": '*',
	"positive": '+',
	"equal": '=',
	"tilda": '~', "tildy": '~', "squiggle": '~',
	"carrot": '^', "karet": '^', "carret": '^',
	"vertical": '|',
	"back slash": '\\',

	// aliases that collide with the above spellings but use the canonical
	// punctuation name too
	"period": '.', "comma": ',', "at": '@', "dash": '-', "minus": '-',
	"underscore": '_', "slash": '/', "colon": ':', "semicolon": ';',
	"hash": '#', "dollar": '$', "percent": '%', "ampersand": '&',
	"asterisk": '*', "star": '*', "plus": '+', "equals": '=',
	"question": '?', "exclamation": '!', "bang": '!', "tilde": '~',
	"caret": '^', "hat": '^', "pipe": '|', "bar": '|', "backslash": '\\',
}
