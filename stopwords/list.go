package stopwords

// list holds the Indonesian stop words in corpus order. A few entries
// ("to", "continue", "page", "next") are corpus artifacts and stay as they are.
var list = []string{
	"tiba-tiba", "kepada", "mengapa", "haruslah", "secukupnya", "sekaligus",
	"tiba", "per", "kata", "kesampaian", "sedikitnya", "sejak", "kamulah",
	"dikarenakan", "to", "setibanya", "setempat", "ialah", "turut",
	"sekali-kali", "seluruh", "utama", "sesaat", "hendaklah", "ingin", "depan",
	"sebanyak", "siapa", "lain", "tersebut", "diketahui", "dimisalkan",
	"meminta", "sekurang-kurangnya", "kapanpun", "amatlah", "semakin",
	"selamanya", "dia", "seseorang", "bagaimana", "gunakan", "sana",
	"sebagainya", "menyangkut", "makanya", "karenanya", "umum", "bung",
	"diberi", "biasanya", "saya", "sedangkan", "pentingnya", "disebutkan",
	"bersama-sama", "dapat", "usah", "tambahnya", "masing-masing", "dituturkan",
	"merekalah", "semata-mata", "berikan", "minta", "kitalah", "keduanya",
	"guna", "lewat", "tanya", "dengan", "apakah", "jangan", "berkehendak",
	"bermacam-macam", "bilakah", "bagaikan", "didatangkan", "hingga",
	"bertutur", "memberi", "kami", "mula", "dibuatnya", "keluar", "dikira",
	"ditegaskan", "kamu", "sini", "perlunya", "pukul", "sedemikian",
	"berdatangan", "sajalah", "sesudah", "kelihatannya", "seolah", "aku",
	"telah", "mengetahui", "dimulai", "tersebutlah", "disinilah", "sekaranglah",
	"dimulainya", "keinginan", "sekalipun", "menegaskan", "menyatakan",
	"tambah", "menyampaikan", "enak", "masuk", "berlainan", "sebut",
	"dimaksudnya", "pihak", "sesuatu", "apa", "misalnya", "menanti-nanti",
	"tanyanya", "mempertanyakan", "anda", "dipergunakan", "next", "walau",
	"jelas", "sesekali", "adalah", "terjadilah", "diungkapkan", "akankah",
	"hendak", "ditunjuknya", "antaranya", "datang", "kalaulah", "sepertinya",
	"malah", "kemungkinan", "inikah", "menginginkan", "berjumlah",
	"berlangsung", "pastilah", "seingat", "setiba", "seberapa", "bersama",
	"nyata", "cukupkah", "sekecil", "lihat", "mempersiapkan", "ibu", "oleh",
	"memisalkan", "siapapun", "selaku", "katakanlah", "sama-sama", "penting",
	"memintakan", "bertanya", "mungkin", "menyeluruh", "diibaratkannya",
	"sebagian", "tak", "tandasnya", "lama", "kecil", "belum", "berikut",
	"lanjutnya", "justru", "kadar", "sekiranya", "selalu", "padanya",
	"semisalnya", "maksud", "mengatakannya", "entahlah", "lah", "sekadar",
	"mereka", "sebenarnya", "dirinya", "benar", "bekerja", "bagaimanakah",
	"menunjuk", "sebagaimana", "berada", "atau", "berbagai", "sebisanya",
	"memastikan", "ataupun", "pertanyaan", "sedikit", "sinilah", "berawal",
	"manakala", "paticle", "se", "ikut", "banyak", "nanti", "waduh", "orang",
	"meski", "dijelaskannya", "menyebutkan", "beginian", "itu",
	"teringat-ingat", "sendirinya", "caranya", "menghendaki", "dilakukan",
	"adanya", "sebesar", "masihkah", "tandas", "enggaknya", "empat",
	"memperkirakan", "yakni", "terdahulu", "artinya", "diibaratkan", "antara",
	"dan", "terdapat", "ditanyakan", "seolah-olah", "terutama", "lanjut",
	"pertanyakan", "sambil", "mendapat", "pak", "kiranya", "menanyai", "tempat",
	"cukup", "untuk", "inilah", "waktu", "kamilah", "terhadapnya", "sudahkah",
	"semaunya", "didapat", "tentu", "begitupun", "tampaknya", "dong", "hari",
	"soalnya", "mengibaratkannya", "terus", "menurut", "cuma", "menggunakan",
	"jelasnya", "segera", "malahan", "mau", "bermacam", "diingat", "seperti",
	"kira-kira", "semisal", "ibaratkan", "tanyakan", "belakangan",
	"selama-lamanya", "mata", "sangatlah", "sampai", "bagian", "ternyata",
	"semasa", "pun", "setidaknya", "langsung", "awalnya", "seluruhnya",
	"termasuk", "tiap", "diperlukannya", "buat", "berikutnya", "tahun", "diri",
	"cara", "entah", "mampukah", "tentulah", "mendatang", "kenapa", "nantinya",
	"kalaupun", "tahu", "secara", "ditandaskan", "kalian", "pertama",
	"benarkah", "punya", "segala", "dini", "katanya", "sebutlah", "beginikah",
	"saatnya", "dibuat", "kapan", "terkira", "lamanya", "memerlukan",
	"bahwasanya", "kok", "atas", "semuanya", "siap", "harus", "toh", "kerja",
	"bukannya", "juga", "setiap", "keterlaluan", "seketika", "diperlihatkan",
	"akan", "para", "mengibaratkan", "sangkut", "meyakini", "ditunjukkannya",
	"berupa", "mempersoalkan", "dilalui", "tersampaikan", "sesudahnya",
	"bisakah", "hanya", "melihatnya", "enggak", "apalagi", "kini",
	"mengucapkannya", "menanyakan", "bahkan", "begini", "melalui", "sekitar",
	"diakhirinya", "seringnya", "rata", "menunjukkan", "setengah", "pro",
	"naik", "membuat", "sejauh", "sekadarnya", "dipersoalkan", "mengatakan",
	"macam", "soal", "mulailah", "maupun", "dipunyai", "bolehkah", "inginkan",
	"ataukah", "sela", "inginkah", "diingatkan", "tentunya", "itukah", "semata",
	"sering", "mendapatkan", "menanya", "tepat", "menunjuknya", "menuturkan",
	"sendiri", "kan", "kebetulan", "amat", "jangankan", "tegas", "tinggi",
	"dahulu", "ke", "dijelaskan", "bulan", "yang", "terdiri", "lagian",
	"ketika", "kita", "sesuatunya", "sekurangnya", "itulah", "tegasnya",
	"kembali", "kemudian", "memberikan", "baik", "akhir", "keadaan", "bahwa",
	"rasa", "menambahkan", "belumlah", "boleh", "berakhirlah", "perlu",
	"tunjuk", "tapi", "berturut", "menjadi", "ibarat", "dituturkannya", "mulai",
	"berapalah", "melakukan", "di", "terjadi", "berapakah", "jumlahnya",
	"olehnya", "sebab", "diberikannya", "sebelum", "diminta", "sebaik-baiknya",
	"percuma", "numeral", "dipertanyakan", "khususnya", "tengah", "sebuah",
	"memperbuat", "ditunjuki", "tampak", "sejumlah", "diantara", "dipastikan",
	"menjelaskan", "lalu", "hampir", "pada", "sempat", "baru", "tertentu",
	"jadi", "bagai", "menunjuki", "manalagi", "sebagai", "mengingatkan",
	"diperbuatnya", "katakan", "menjawab", "karena", "dimungkinkan",
	"bagainamakah", "suatu", "begitu", "dikerjakan", "memungkinkan",
	"mungkinkah", "sebaik", "rupa", "keseluruhannya", "dimaksudkannya",
	"sedang", "berarti", "awal", "sehingga", "tuju", "sepantasnyalah",
	"seharusnya", "bagaimanapun", "diperkirakan", "terlihat", "cukuplah",
	"tidakkah", "misalkan", "begitulah", "dilihat", "biasa", "tetapi", "akhiri",
	"berapa", "menaiki", "memang", "mana", "masalahnya", "ungkap", "tutur",
	"terlebih", "memihak", "dimaksud", "disampaikan", "sekitarnya", "ujar",
	"makin", "berlalu", "bahwasannya", "semula", "meyakinkan", "berakhirnya",
	"sendirian", "dua", "daripada", "sebetulnya", "ditujukan", "hendaknya",
	"menuju", "menantikan", "antar", "diantaranya", "bermula", "ibaratnya",
	"bermaksud", "rasanya", "tiga", "setidak-tidaknya", "lebih", "tanpa",
	"kinilah", "demikianlah", "persoalan", "terjadinya", "bila", "agak",
	"semampu", "agar", "sesama", "bawah", "benarlah", "rupanya", "diperlukan",
	"bakalan", "terhadap", "berujar", "demi", "kasus", "semampunya", "seusai",
	"ia", "disini", "pihaknya", "kapankah", "saling", "kedua", "sekali",
	"balik", "sama", "diperbuat", "maka", "diberikan", "mempunyai", "diucapkan",
	"belakang", "sampaikan", "betulkah", "bagi", "ingat", "sepantasnya",
	"ditambahkan", "semacam", "yakin", "merasa", "mendatangkan", "ingat-ingat",
	"dimaksudkan", "nyatanya", "memulai", "disebut", "umumnya", "tertuju",
	"merupakan", "sebaliknya", "hanyalah", "dari", "mempergunakan", "adjectice",
	"kelihatan", "ujarnya", "namun", "sesampai", "jawab", "terakhir", "nyaris",
	"kala", "terlalu", "sangat", "kali", "ucap", "tadinya", "jauh", "setelah",
	"selain", "sekalian", "mengungkapkan", "sebutnya", "hal", "teringat",
	"demikian", "akhirnya", "perlukah", "agaknya", "ada", "andalah", "adapun",
	"laku", "jumlah", "jikalau", "pernah", "tuturnya", "sebelumnya", "panjang",
	"siapakah", "mengira", "sekarang", "mengenai", "ungkapnya", "bukanlah",
	"masih", "janganlah", "kelima", "melihat", "kira", "mendatangi", "jadinya",
	"bertanya-tanya", "bukan", "jika", "continue", "sebaiknya", "mirip",
	"sebegini", "page", "berkali-kali", "sesegera", "tetap", "melainkan",
	"pertama-tama", "supaya", "segalanya", "masing", "sudahlah", "sebabnya",
	"apabila", "semua", "menanti", "dekat", "lima", "sejenak", "jawabnya",
	"ditanya", "saat", "sudah", "walaupun", "sementara", "jelaslah", "mampu",
	"ditanyai", "terasa", "usai", "lainnya", "mengucapkan", "padahal", "pasti",
	"wong", "kelamaan", "asal", "tidak", "luar", "dimintai", "sampai-sampai",
	"beberapa", "menyiapkan", "kurang", "digunakan", "jelaskan", "begitukah",
	"bakal", "dikatakan", "jawaban", "bisa", "yaitu", "sebegitu", "wahai",
	"seperlunya", "masalah", "tadi", "kemungkinannya", "besar", "disebutkannya",
	"menandaskan", "tidaklah", "wah", "dalam", "jadilah", "lagi", "bolehlah",
	"berakhir", "memperlihatkan", "berapapun", "dulu", "diketahuinya",
	"berkata", "akulah", "ditunjuk", "arti", "berturut-turut", "beri", "saja",
	"mengingat", "masa", "satu", "pula", "bersiap-siap", "bukankah",
	"mengakhiri", "tentang", "kalau", "sewaktu", "seorang", "semasih",
	"kepadanya", "mengerjakan", "paling", "pantas", "diinginkan", "ditunjukkan",
	"ini", "dialah", "dimulailah", "seenaknya", "berkeinginan", "diakhiri",
	"keseluruhan", "selanjutnya", "serupa", "nah", "setinggi", "meskipun",
	"betul", "berkenaan", "bersiap", "seterusnya", "mulanya", "dikatakannya",
	"harusnya", "waktunya", "bapak", "dijawab", "diucapkannya", "apaan",
	"apatah", "kena", "serta", "beginilah", "khusus", "terbanyak", "asalkan",
	"sayalah", "selama", "sepanjang", "sepihak", "hadap", "ucapnya", "misal",
	"berlebihan",
}
