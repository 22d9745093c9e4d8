package main

// targetFile is relative to the root of the expo project.
const targetFile = "app/tabs/profile.tsx"

type filechange struct {
	name        string
	needle      string
	replacement string
	// count is passed to strings.Replace, -1 replaces every occurrence
	count    int
	required bool
}

const pressBlock = "\r\n          <YStack gap=\"$3\">\r\n" +
	"            <Pressable onPress={handleGoHome} style={({ pressed }) => ({ opacity: pressed ? 0.6 : 1 })}>\r\n" +
	"              <XStack ai=\"center\" gap=\"$1\">\r\n" +
	"                <ChevronLeft size={16} color=\"$gray11\" />\r\n" +
	"                <Text fontSize={14} color=\"$gray10\">Main menu</Text>\r\n" +
	"              </XStack>\r\n" +
	"            </Pressable>\r\n" +
	"\r\n" +
	"            <YStack"

const pressBlockReplacement = "\r\n          <YStack gap=\"$3\">\r\n            <YStack"

const goHomeHandler = "  const handleGoHome = useCallback(() => {\r\n" +
	"    router.replace({ pathname: '/tabs' });\r\n" +
	"  }, [router]);\r\n" +
	"\r\n"

var filechanges = []filechange{
	{name: "press block", needle: pressBlock, replacement: pressBlockReplacement, count: 1, required: true},
	{name: "handleGoHome", needle: goHomeHandler, replacement: "", count: -1},
	{
		name:        "react-native import",
		needle:      "import { Alert, Pressable } from 'react-native';",
		replacement: "import { Alert } from 'react-native';",
		count:       -1,
	},
	{
		name:        "lucide-icons import",
		needle:      "import { Copy, Settings, LogOut, ChevronRight, ChevronLeft } from '@tamagui/lucide-icons';",
		replacement: "import { Copy, Settings, LogOut, ChevronRight } from '@tamagui/lucide-icons';",
		count:       -1,
	},
}
