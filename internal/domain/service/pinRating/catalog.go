package pinRating

// commonlyUsed часто используемые PIN: лестницы, повторы, популярные годы,
// узоры на клавиатуре. 4- и 6-значные лежат в одном множестве.
//
//nolint:gochecknoglobals
var commonlyUsed = newCatalog(
	// 4 цифры
	"1234", "2345", "3456", "4567", "5678", "6789", "7890", "0123",
	"0000", "1111", "2222", "3333", "4444", "5555", "6666", "7777", "8888", "9999",
	"1212", "1122", "1221", "2112", "1001", "2002", "3003", "4004",
	"4321", "9876", "1010", "2020", "0101", "1313",
	"1990", "1980", "2000", "2022", "2023", "2024",
	"0707", "0808", "0911", "1110", "0606", "0311",
	"6969", "1230", "1004", "1211", "1919", "1987", "1985",
	"2580", "0852", "1470", "3690", "7410", "9630", "2468", "1357",

	// 6 цифр
	"123456", "111111", "000000", "121212", "777777", "654321", "112233",
	"999999", "555555", "666666", "112211", "101010", "121314", "123123",
	"987654", "159753", "456789", "147258", "741852", "369258",
	"012345", "222222", "333333", "444444", "888888", "147852",
)

type catalog map[string]struct{}

func newCatalog(pins ...string) catalog {
	c := make(catalog, len(pins))
	for _, pin := range pins {
		c[pin] = struct{}{}
	}

	return c
}

// IsCommonlyUsed проверяет PIN по каталогу, точное совпадение строки.
func IsCommonlyUsed(pin string) bool {
	_, ok := commonlyUsed[pin]
	return ok
}
