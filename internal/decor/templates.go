package decor

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
)

// Language identifies a code-mode template family.
type Language string

const (
	LangC      Language = "c"
	LangCPP    Language = "cpp"
	LangJava   Language = "java"
	LangPython Language = "python"
)

// DefaultLanguage is the language code mode starts with.
const DefaultLanguage = LangC

// placeholder is the single insertion point each template carries.
const placeholder = "{{message}}"

// ErrInvalidLanguage is returned when a language name is not registered.
type ErrInvalidLanguage struct {
	Name string
}

func (e *ErrInvalidLanguage) Error() string {
	return fmt.Sprintf("unsupported language: %s (supported: %s)", e.Name, strings.Join(LanguageNames(), ", "))
}

// ParseLanguage validates a user-supplied language name.
func ParseLanguage(name string) (Language, error) {
	lang := Language(strings.ToLower(name))
	if _, ok := codeTemplates[lang]; !ok {
		return "", &ErrInvalidLanguage{Name: name}
	}
	return lang, nil
}

// LanguageNames returns the registered language names, sorted, for
// completion and error messages.
func LanguageNames() []string {
	names := make([]string, 0, len(codeTemplates))
	for lang := range codeTemplates {
		names = append(names, string(lang))
	}
	sort.Strings(names)
	return names
}

var codeTemplates = map[Language][]string{
	LangC: {
		`#include <stdio.h>
#include <string.h>

void printMessage(const char* msg) {
    printf("%s\n", msg);
}

int main() {
    printMessage("{{message}}");
    return 0;
}`,
		`#include <stdio.h>
#include <string.h>

void echoMessage(const char* msg) {
    for (int i = 0; i < strlen(msg); i++) {
        printf("%c", msg[i]);
    }
    printf("\n");
}

int main() {
    echoMessage("{{message}}");
    return 0;
}`,
		`#include <stdio.h>
#include <string.h>

void reportStatus(const char* status) {
    printf("Status report: %s\n", status);
    printf("Message length: %d bytes\n", (int)strlen(status));
}

int main() {
    reportStatus("{{message}}");
    return 0;
}`,
	},
	LangCPP: {
		`#include <iostream>
#include <string>

void displayMessage(const std::string& msg) {
    std::cout << msg << std::endl;
}

int main() {
    displayMessage("{{message}}");
    return 0;
}`,
		`#include <iostream>
#include <string>

class ConsoleMessenger {
public:
    void log(const std::string& msg) {
        std::cout << "LOG: " << msg << std::endl;
    }
};

int main() {
    ConsoleMessenger messenger;
    messenger.log("{{message}}");
    return 0;
}`,
	},
	LangJava: {
		`class MyProgram {
    public static void main(String[] args) {
        System.out.println("{{message}}");
    }
}`,
		`class MessageHandler {
    public void processMessage(String message) {
        System.out.println("Processing message: " + message);
    }
}

public class Main {
    public static void main(String[] args) {
        MessageHandler handler = new MessageHandler();
        handler.processMessage("{{message}}");
    }
}`,
	},
	LangPython: {
		`import sys

def output_message(msg):
    print(msg)

if __name__ == "__main__":
    output_message("{{message}}")`,
		`class MessageProcessor:
    def __init__(self, message):
        self.message = message

    def display(self):
        print(f"Message: {self.message}")

if __name__ == "__main__":
    processor = MessageProcessor("{{message}}")
    processor.display()`,
	},
}

// Templates returns the registered templates for a language.
func Templates(lang Language) []string {
	return codeTemplates[lang]
}

// escapeMessage makes the message safe inside the template's string
// literal for the given language.
func escapeMessage(lang Language, msg string) string {
	switch lang {
	case LangC, LangCPP:
		return strings.ReplaceAll(msg, `"`, `\"`)
	case LangJava:
		msg = strings.ReplaceAll(msg, `\`, `\\`)
		return strings.ReplaceAll(msg, `"`, `\"`)
	default:
		return msg
	}
}

// WrapCode embeds msg into a uniformly chosen template for lang and
// fences the result as a markdown code block.
func WrapCode(rng *rand.Rand, lang Language, msg string) string {
	templates := codeTemplates[lang]
	tpl := templates[rng.Intn(len(templates))]
	code := strings.Replace(tpl, placeholder, escapeMessage(lang, msg), 1)
	return fmt.Sprintf("```%s\n%s\n```", lang, code)
}
