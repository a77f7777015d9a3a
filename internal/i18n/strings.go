package i18n

// Message keys. Category and folder label keys are the identifiers
// themselves (for example "accessory" or "folder.texture").
const (
	KeyPathPlaceholder     = "path.placeholder"
	KeySearching           = "search.in_progress"
	KeySearchAuthor        = "search.author"
	KeySearchTitle         = "search.title"
	KeySearchAvatar        = "search.avatar"
	KeySearchCategory      = "search.category"
	KeySearchResults       = "search.results"
	KeyFolderSearchResults = "search.folder_results"
	KeyAuthorLine          = "row.author"
	KeyItemCount           = "row.item_count"
	KeyFileKind            = "row.file_kind"
	KeyCommonAvatar        = "row.common_avatar"
	KeyAllAvatars          = "row.all_avatars"
	KeyActionCopyBooth     = "action.copy_booth"
	KeyActionOpenBooth     = "action.open_booth"
	KeyActionAuthorItems   = "action.author_items"
	KeyActionOpenFolder    = "action.open_folder"
	KeyActionEdit          = "action.edit"
	KeyActionDelete        = "action.delete"
	KeyActionOpenFile      = "action.open_file"
	KeyBackupNever         = "backup.never"
	KeyBackupAgo           = "backup.ago"
	KeyBackupFailed        = "backup.failed"
)

var table = map[string]map[Lang]string{
	// item categories
	"avatar":     {Japanese: "アバター", English: "Avatar", Korean: "아바타"},
	"clothing":   {Japanese: "衣装", English: "Clothing", Korean: "의상"},
	"texture":    {Japanese: "テクスチャ", English: "Texture", Korean: "텍스처"},
	"gimmick":    {Japanese: "ギミック", English: "Gimmick", Korean: "기믹"},
	"accessory":  {Japanese: "アクセサリー", English: "Accessory", Korean: "액세서리"},
	"hair_style": {Japanese: "髪型", English: "Hair style", Korean: "헤어스타일"},
	"animation":  {Japanese: "アニメーション", English: "Animation", Korean: "애니메이션"},
	"tool":       {Japanese: "ツール", English: "Tool", Korean: "툴"},
	"shader":     {Japanese: "シェーダー", English: "Shader", Korean: "셰이더"},
	"custom":     {Japanese: "カスタム", English: "Custom", Korean: "커스텀"},
	"unknown":    {Japanese: "不明", English: "Unknown", Korean: "알 수 없음"},

	// item sub-folders
	"folder.modification_data": {Japanese: "改変用データ", English: "Modification data", Korean: "개변용 데이터"},
	"folder.texture":           {Japanese: "テクスチャ", English: "Texture", Korean: "텍스처"},
	"folder.document":          {Japanese: "ドキュメント", English: "Document", Korean: "문서"},
	"folder.unity_package":     {Japanese: "Unityパッケージ", English: "Unity package", Korean: "Unity 패키지"},
	"folder.material":          {Japanese: "マテリアル", English: "Material", Korean: "머티리얼"},
	"folder.unknown":           {Japanese: "不明", English: "Unknown", Korean: "알 수 없음"},

	KeyPathPlaceholder:     {Japanese: "ここには現在のパスが表示されます", English: "The current path is shown here", Korean: "여기에 현재 경로가 표시됩니다"},
	KeySearching:           {Japanese: "検索中... - ", English: "Searching... - ", Korean: "검색 중... - "},
	KeySearchAuthor:        {Japanese: "作者", English: "Author", Korean: "작가"},
	KeySearchTitle:         {Japanese: "タイトル", English: "Title", Korean: "타이틀"},
	KeySearchAvatar:        {Japanese: "アバター", English: "Avatar", Korean: "아바타"},
	KeySearchCategory:      {Japanese: "カテゴリ", English: "Category", Korean: "카테고리"},
	KeySearchResults:       {Japanese: "検索結果: %d件 (全%d件)", English: "Search results: %d (of %d)", Korean: "검색 결과: %d건 (전체 %d건)"},
	KeyFolderSearchResults: {Japanese: "フォルダー内検索結果: %d件 (全%d件)", English: "Folder search results: %d (of %d)", Korean: "폴더 내 검색 결과: %d건 (전체 %d건)"},
	KeyAuthorLine:          {Japanese: "作者: %s", English: "Author: %s", Korean: "작가: %s"},
	KeyItemCount:           {Japanese: "%d個の項目", English: "%d items", Korean: "%d개의 항목"},
	KeyFileKind:            {Japanese: "%sファイル", English: "%s file", Korean: "%s 파일"},
	KeyCommonAvatar:        {Japanese: "共通素体: %s", English: "Common avatar: %s", Korean: "공통 소체: %s"},
	KeyAllAvatars:          {Japanese: "すべてのアバター", English: "All avatars", Korean: "모든 아바타"},
	KeyActionCopyBooth:     {Japanese: "Boothリンクのコピー", English: "Copy Booth link", Korean: "Booth 링크 복사"},
	KeyActionOpenBooth:     {Japanese: "Boothリンクを開く", English: "Open Booth link", Korean: "Booth 링크 열기"},
	KeyActionAuthorItems:   {Japanese: "この作者の他のアイテムを表示", English: "Show other items by this author", Korean: "이 작가의 다른 아이템 표시"},
	KeyActionOpenFolder:    {Japanese: "フォルダを開く", English: "Open folder", Korean: "폴더 열기"},
	KeyActionEdit:          {Japanese: "編集", English: "Edit", Korean: "편집"},
	KeyActionDelete:        {Japanese: "削除", English: "Delete", Korean: "삭제"},
	KeyActionOpenFile:      {Japanese: "ファイルのパスを開く", English: "Open file location", Korean: "파일 위치 열기"},
	KeyBackupNever:         {Japanese: "最終自動バックアップ: なし", English: "Last auto backup: never", Korean: "마지막 자동 백업: 없음"},
	KeyBackupAgo:           {Japanese: "最終自動バックアップ: %d分前", English: "Last auto backup: %d minutes ago", Korean: "마지막 자동 백업: %d분 전"},
	KeyBackupFailed:        {Japanese: "自動バックアップに失敗しました", English: "Auto backup failed", Korean: "자동 백업에 실패했습니다"},
}

